package cli

import (
	"io"
	"log/slog"
)

// NewLogger builds the logger that traces an evaluation to w. levelStr is
// one of the names Parse accepts ("debug", "info", "warn", "error"); an
// unrecognized name falls back to info. formatStr "json" selects
// slog's JSON handler, anything else the text handler. The process-wide
// default logger is left alone.
func NewLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
