package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		field  string
	}{
		{"ok", func(*Form) {}, ""},
		{"blank name", func(f *Form) { f.Name = "   " }, "name"},
		{"no email", func(f *Form) { f.Email = "" }, "email"},
		{"bad email", func(f *Form) { f.Email = "not-an-address" }, "email"},
		{"no subject", func(f *Form) { f.Subject = "" }, "subject"},
		{"no message", func(f *Form) { f.Message = "\n" }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := f.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidField)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLocalSubmitter(t *testing.T) {
	ack, err := LocalSubmitter{}.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, AckMessage, ack.Message)

	_, err = LocalSubmitter{}.Submit(context.Background(), Form{})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestLocalSubmitterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LocalSubmitter{}.Submit(ctx, validForm())
	assert.ErrorIs(t, err, context.Canceled)
}
