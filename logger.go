package vg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger so SetLogger may race with logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for vg and its sub-packages.
// By default vg produces no log output. Pass nil to silence it again.
//
// Log levels used by vg:
//   - [slog.LevelDebug]: culled draws, degenerate shapes, segment clamping,
//     triangulation fallbacks
//   - [slog.LevelInfo]: backend registration and creation
//   - [slog.LevelWarn]: invalid resolution policies that were normalised
//
// Example:
//
//	vg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call this to share the
// same configuration. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
