// Package log provides the library's leveled logging. It wraps log/slog
// behind the small printf-style surface the sanitizer packages use.
// Embedding applications can set the output destination, the minimum
// level, and the text or JSON format; the slog handler itself cannot be
// replaced.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs human-readable key=value lines.
	FormatText Format = "text"
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
)

var (
	// ErrUnknownLevel indicates an unrecognized log level string.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat indicates an unrecognized log format string.
	ErrUnknownFormat = errors.New("unknown log format")
)

var (
	mu     sync.Mutex
	out    io.Writer  = os.Stderr
	level             = new(slog.LevelVar)
	format            = FormatText
	logger            = slog.New(newHandler(out, level, format))
)

func init() {
	// Sanitation passes are silent by default.
	level.Set(slog.LevelWarn)
}

func newHandler(w io.Writer, lvl slog.Leveler, f Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	if f == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func rebuild() {
	logger = slog.New(newHandler(out, level, format))
}

// SetOutput sets the output destination for the package logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	rebuild()
}

// SetLevel sets the minimum level emitted.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetFormat switches between text and JSON output.
func SetFormat(f Format) {
	mu.Lock()
	defer mu.Unlock()
	format = f
	rebuild()
}

// ParseLevel maps a level string to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// ParseFormat maps a format string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func logf(l slog.Level, format string, args ...any) {
	mu.Lock()
	lg := logger
	mu.Unlock()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}
