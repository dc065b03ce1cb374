package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the default slog logger, writing to stderr.
// LOG_LEVEL: debug, info, warn, error (default: info); verbose forces debug.
// LOG_FORMAT: text, json (default: text).
func Init(verbose bool) {
	slog.SetDefault(New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), verbose))
}

// New builds a logger for w from level and format names.
func New(w io.Writer, level, format string, verbose bool) (logger *slog.Logger) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if strings.ToLower(strings.TrimSpace(format)) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
	return logger
}

func parseLevel(level string) (l slog.Level) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return l
}
