// Package logging wires the process-wide slog logger, with optional file
// rotation. Log output never goes to stdout: the mcp subcommand owns stdout
// for the stdio transport and the report subcommands own it for CSV and JSON
// output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the global logger.
type Options struct {
	Level    string // debug, info, warn, error
	File     string // rotated log file; empty logs to stderr
	MaxSize  int    // MB per file before rotation
	Backups  int    // rotated files kept
	MaxAge   int    // days before rotated files are pruned
	Compress bool
}

// Defaults returns the logging options used when nothing is configured.
func Defaults() Options {
	return Options{
		Level:    "info",
		MaxSize:  20,
		Backups:  3,
		MaxAge:   28,
		Compress: true,
	}
}

// Init installs the default slog logger. The returned close function flushes
// and closes the rotated file, if any.
func Init(opts Options) (func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.Backups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
			LocalTime:  true,
		}
		w = lj
		closeFn = lj.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(opts.Level)})
	slog.SetDefault(slog.New(handler))
	return closeFn, nil
}

func level(s string) slog.Level {
	switch strings.ToLower(s) {
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
