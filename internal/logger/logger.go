// Package logger provides a thin leveled logging layer over log/slog for the
// command-line tools. The codec packages stay logger-free; only the CLI
// wires this up.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	slogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// Init configures the process-wide logger. Level is one of DEBUG, INFO,
// WARN, ERROR (case-insensitive; unknown values fall back to INFO). Format
// is "text" or "json".
func Init(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	slogger = slog.New(h)
	mu.Unlock()
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return slogger
}

// Debug logs at debug level with structured key-value pairs.
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs at info level with structured key-value pairs.
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs at warn level with structured key-value pairs.
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs at error level with structured key-value pairs.
func Error(msg string, args ...any) { get().Error(msg, args...) }
