package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Default rotation parameters for the optional log file.
const (
	DefaultMaxSizeMB  = 10 // MB
	DefaultMaxBackups = 3  // number of backup files
	DefaultMaxAgeDays = 7  // days
)

// Config describes the diagnostic log destination. The zero value is
// silent so stderr stays clean for the single diagnostic line the CLI
// may print on failure.
type Config struct {
	Level      string // debug|info|warn|error; empty disables stderr logging
	File       string // rotating log file; overrides stderr output
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New builds a slog.Logger for the config. The returned closer is non-nil
// only when a file sink was opened.
func New(c Config) (*slog.Logger, io.Closer) {
	lvl, enabled := parseLevel(c.Level)
	if c.File != "" {
		w := &lj.Logger{
			Filename:   c.File,
			MaxSize:    valOr(c.MaxSizeMB, DefaultMaxSizeMB),
			MaxBackups: valOr(c.MaxBackups, DefaultMaxBackups),
			MaxAge:     valOr(c.MaxAgeDays, DefaultMaxAgeDays),
			Compress:   c.Compress,
		}
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
		return slog.New(h), w
	}
	if !enabled {
		return slog.New(discardHandler{}), nil
	}
	return slog.New(NewColorTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// discardHandler mirrors slog.DiscardHandler, which needs Go 1.24: it
// discards every record and reports all levels as disabled.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func valOr(v int, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
