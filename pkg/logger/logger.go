package logger

import (
	"io"
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

// InitDiscard swaps in a logger that drops everything. Used by tests that
// exercise error paths without polluting their output.
func InitDiscard() {
	Log = slog.New(slog.NewTextHandler(io.Discard, nil))
}
