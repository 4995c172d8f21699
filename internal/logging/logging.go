// Package logging builds the CLI's slog logger.
//
// Logs never go to stdout: stdout carries command output only. Without a
// log file the logger writes text to stderr; with one it writes JSON through
// a rotating lumberjack writer.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for file logging.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error. Anything else means warn.
	Level string
	// File enables rotating JSON file logging when non-empty.
	File string
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a logger and a closer for any file it opened.
func New(opts Options, stderr io.Writer) (*slog.Logger, io.Closer) {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	if opts.File == "" {
		return slog.New(slog.NewTextHandler(stderr, handlerOpts)), nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAgeDays,
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts)), w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
