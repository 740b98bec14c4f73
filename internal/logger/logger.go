package logger

import (
	"log/slog"
	"os"
)

var base *slog.Logger

// Init configures the global logger. Development gets human-readable text at
// debug level; everything else gets JSON for log aggregation.
func Init(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo, AddSource: true}

	var h slog.Handler
	if env == "development" {
		opts.Level = slog.LevelDebug
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	base = slog.New(h)
	slog.SetDefault(base)
}

// GetLogger lazily initializes so packages can log before Init runs.
func GetLogger() *slog.Logger {
	if base == nil {
		Init("development")
	}
	return base
}

// With returns a logger with extra fields attached.
func With(args ...any) *slog.Logger { return GetLogger().With(args...) }

func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetLogger().Warn(msg, args...) }
func Error(msg string, args ...any) { GetLogger().Error(msg, args...) }

// Fatal logs the message and exits the process.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}
