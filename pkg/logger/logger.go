package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init so library code and tests never hit a nil logger.
var Log = slog.New(slog.NewTextHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
