// Package slog provides logging decorators for esosearch services and the
// logger used by the command line.
package slog

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. A negative verbosity logs
// errors only, zero logs progress messages and a positive verbosity adds
// per-page debug traces.
func NewLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbosity < 0:
		level = slog.LevelError
	case verbosity > 0:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
