// Package logging builds the slog logger shared by the application.
//
// Settings come from the [log] config section and may be overridden by
// SHAPEDRAW_LOG_LEVEL, SHAPEDRAW_LOG_FORMAT and SHAPEDRAW_LOG_FILE. When a
// file is configured records are also written there as JSON, rotated by
// lumberjack.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	File   string // optional rotated log file
}

// WithEnv returns opts with any SHAPEDRAW_LOG_* variables applied on top.
func (o Options) WithEnv() Options {
	if v := strings.TrimSpace(os.Getenv("SHAPEDRAW_LOG_LEVEL")); v != "" {
		o.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("SHAPEDRAW_LOG_FORMAT")); v != "" {
		o.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("SHAPEDRAW_LOG_FILE")); v != "" {
		o.File = v
	}
	return o
}

// New builds a logger writing to w (stderr when nil) and, if configured, to
// a rotating file. The returned io.Closer releases the file.
func New(w io.Writer, opts Options) (*slog.Logger, io.Closer) {
	if w == nil {
		w = os.Stderr
	}
	lvl := ParseLevel(opts.Level)
	hopts := &slog.HandlerOptions{Level: lvl}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(w, hopts)
	} else {
		console = slog.NewTextHandler(w, hopts)
	}

	if strings.TrimSpace(opts.File) == "" {
		return slog.New(console), nopCloser{}
	}
	file := &lj.Logger{Filename: opts.File, MaxSize: 5, MaxBackups: 3, MaxAge: 14}
	fh := slog.NewJSONHandler(file, hopts)
	return slog.New(fanout{console, fh}), file
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fanout sends every record to all handlers that accept its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
