package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared structured logger. Setup replaces it; until then it
// writes info and above to stderr.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Setup configures the shared logger. level is debug|info|warn|error; an empty
// level falls back to $LOG_LEVEL.
func Setup(w io.Writer, level string) *slog.Logger {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
	return Logger
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
