package gepard

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler implements slog.Handler by discarding every record.
// Enabled always answers false, so a disabled Logger call never reaches
// as far as formatting a message or its attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

// active holds the package's current logger behind an atomic pointer so
// Fill can read it from any goroutine while a caller calls SetLogger from
// another.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silentLogger())
}

// SetLogger installs l as the logger Context.Fill reports tessellation
// results to. The default is silent: a Context never logs unless a
// caller opts in. Pass nil to restore the silent default.
//
//	gepard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	active.Store(l)
}

// Logger returns the logger a Context currently reports to.
func Logger() *slog.Logger {
	return active.Load()
}
