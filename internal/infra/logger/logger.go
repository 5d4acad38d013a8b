// Package logger builds the structured logger used by long-running commands.
package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger; dev environments get debug level.
func New(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
