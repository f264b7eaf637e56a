package input

import (
	"fmt"

	"Folio3D/internal/logger"

	"go.uber.org/zap"
)

// Guard runs fn and swallows any panic it raises, logging it under name.
// Every host callback is wrapped so a failing handler cannot take the loop down.
// It reports whether fn returned normally.
func Guard(name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("Callback panicked",
				zap.String("callback", name),
				zap.String("panic", fmt.Sprint(r)))
			ok = false
		}
	}()
	fn()
	return true
}
