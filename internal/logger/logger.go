package logger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned by InitLevel for level names zap does not know.
var ErrUnknownLevel = errors.New("unknown log level")

// Log is the process-wide logger. It is a no-op until Init or InitLevel runs.
var Log = zap.NewNop()

// Init sets up a development console logger at info level.
func Init() {
	if err := InitLevel("info"); err != nil {
		Log = zap.NewExample()
	}
}

// InitLevel sets up the console logger at the named level (debug, info, warn, error).
// On an unknown name the logger is still initialised, at info, and the error is returned.
func InitLevel(level string) error {
	var lvl zapcore.Level
	var levelErr error
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
		levelErr = fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Log = l
	return levelErr
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Log.Sync()
}
