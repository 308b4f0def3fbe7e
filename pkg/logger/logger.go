package logger

import (
	"log/slog"
	"os"
)

var Log = slog.Default()

// Init configures the process-wide slog logger. Debug level everywhere
// except production, where Info keeps the noise down.
func Init(environment string) {
	level := slog.LevelDebug
	if environment == "production" {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
