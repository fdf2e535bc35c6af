package spawngroup

import (
	"context"
	"log/slog"
)

// Logger receives diagnostic events that have no other home on the caller's
// stream: a recovered panic, a worker observing cancellation. It is
// intentionally narrow — msg plus alternating key/value pairs, mirroring
// slog's own convention — so any slog.Logger satisfies it without an
// adapter.
type Logger interface {
	Error(msg string, kv ...any)
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Error(msg string, kv ...any) {
	s.l.Log(context.Background(), slog.LevelError, msg, kv...)
}

func defaultLogger() Logger {
	return slogLogger{l: slog.Default()}
}

// NewSlogLogger adapts an existing *slog.Logger to the Logger seam, for
// callers who want their own handler/attrs wired in instead of the default.
func NewSlogLogger(l *slog.Logger) Logger {
	return slogLogger{l: l}
}
