// Package contact holds the contact form. Submissions are acknowledged
// locally and never leave the process.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"Folio3D/internal/logger"
)

// AckMessage is shown after a successful submission.
const AckMessage = "Form submitted! This is a demo, so no actual email is sent."

// ErrInvalidField is wrapped by every validation failure.
var ErrInvalidField = errors.New("invalid field")

type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate requires every field and a parseable email address.
func (f Form) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	}
	for _, fl := range fields {
		if strings.TrimSpace(fl.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidField, fl.name)
		}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(f.Email)); err != nil {
		return fmt.Errorf("%w: email: %v", ErrInvalidField, err)
	}
	return nil
}

// Ack is the result of a submission.
type Ack struct {
	Message string
}

type Submitter interface {
	Submit(ctx context.Context, f Form) (Ack, error)
}

// LocalSubmitter validates and acknowledges without sending anything.
type LocalSubmitter struct{}

func (LocalSubmitter) Submit(ctx context.Context, f Form) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}
	if err := f.Validate(); err != nil {
		return Ack{}, err
	}
	logger.Log.Info("Contact form submitted",
		zap.String("name", f.Name),
		zap.String("subject", f.Subject),
		zap.Int("messageLength", len(f.Message)))
	return Ack{Message: AckMessage}, nil
}
