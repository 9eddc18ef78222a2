package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Logger provides leveled, printf-style logging throughout the application.
// Records are handed to slog so that child loggers can carry attributes
// such as the run id.
type Logger struct {
	slog *slog.Logger
}

// LoggerOptions controls where and how log records are written.
type LoggerOptions struct {
	// Writer defaults to os.Stderr so stdout stays reserved for output.
	Writer io.Writer
	// Level is one of debug, info, warn, error. Defaults to info.
	Level    string
	UseColor bool
}

// NewLogger creates a Logger writing coloured output to stderr at info level.
func NewLogger() *Logger {
	return NewLoggerWithOptions(LoggerOptions{UseColor: true})
}

// NewLoggerWithOptions builds a Logger backed by a tint handler, or a plain
// slog text handler when colour is disabled.
func NewLoggerWithOptions(opts LoggerOptions) *Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := ParseLevel(opts.Level)

	var handler slog.Handler
	if opts.UseColor {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return &Logger{slog: slog.New(handler)}
}

// NewDiscardLogger returns a Logger that drops everything. Handy in tests.
func NewDiscardLogger() *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))}
}

// ParseLevel maps a level name to a slog.Level, falling back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// With returns a child logger that adds the given attribute to every record.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{slog: l.slog.With(key, value)}
}

func (l *Logger) log(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	l.slog.Log(ctx, level, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.log(slog.LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(slog.LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(slog.LevelError, format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(slog.LevelDebug, format, args...)
}
