package game

import (
	"context"
	"log/slog"
)

// nopHandler discards every record; Enabled returns false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger = slog.New(nopHandler{})

// SetLogger sets the logger used by the game loop. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Log levels:
//   - [slog.LevelDebug]: slider drags
//   - [slog.LevelInfo]: page transitions, curve selection, audio start-up
//   - [slog.LevelWarn]: audio unavailable
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Logger returns the current logger.
func Logger() *slog.Logger { return logger }
