// Package logging builds the process logger: human-readable text on the
// console and, when a log file is configured, JSON lines in that file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	Level   slog.Level
	Console io.Writer // defaults to os.Stderr
	File    string    // JSON log file, appended to; empty disables it
}

// New returns a logger fanned out to every configured sink and a close
// function releasing the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.Level <= slog.LevelDebug,
	}

	handlers := []slog.Handler{slog.NewTextHandler(console, handlerOpts)}
	closeFn := func() error { return nil }

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// Setup builds the logger and installs it as the slog default.
func Setup(opts Options) (func() error, error) {
	logger, closeFn, err := New(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}
