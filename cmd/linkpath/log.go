package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/linkpath"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configure logging, read from the environment:
//   - LINKPATH_LOG_LEVEL=debug|info|warn|error
//   - LINKPATH_LOG_FILE=<path> (JSON lines, rotated)
type LogOptions struct {
	Level string
	File  string
}

func logOptionsFromEnv() LogOptions {
	return LogOptions{
		Level: os.Getenv("LINKPATH_LOG_LEVEL"),
		File:  os.Getenv("LINKPATH_LOG_FILE"),
	}
}

// newLogger returns a logger writing text to w and, if opts.File is set, JSON to a rotated log file. The returned closer closes the log file.
func newLogger(w io.Writer, opts LogOptions) (*slog.Logger, io.Closer) {
	lvl := parseLevel(opts.Level)
	hs := []slog.Handler{slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})}

	var closer io.Closer = nopCloser{}
	if strings.TrimSpace(opts.File) != "" {
		lj := &lumberjack.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		hs = append(hs, slog.NewJSONHandler(lj, &slog.HandlerOptions{Level: lvl}))
		closer = lj
	}
	if len(hs) == 1 {
		return slog.New(hs[0]), closer
	}
	return slog.New(&multi{hs}), closer
}

// initLogger configures the logger of the linkpath package from the environment.
func initLogger() io.Closer {
	logger, closer := newLogger(os.Stderr, logOptionsFromEnv())
	linkpath.SetLogger(logger.With(slog.String("component", "linkpath")))
	return closer
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multi fans out log records to multiple handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		} else if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithAttrs(attrs)
	}
	return &multi{hs}
}

func (m *multi) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithGroup(name)
	}
	return &multi{hs}
}
