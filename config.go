package spawngroup

import (
	"fmt"

	"github.com/ygrebnov/spawngroup/metrics"
)

// Config controls how a group's runtime engine and underlying pool are
// constructed. The zero value is not meant to be used directly; build one
// through Options via the With* entry points, which apply defaultConfig
// first.
type Config struct {
	// FixedPoolSize, when non-zero, selects a fixed-size worker pool of
	// this many workers. Zero means the default pool, sized to
	// runtime.GOMAXPROCS(0).
	FixedPoolSize uint

	// StreamBufferSize bounds the internal buffer the async result stream
	// holds before a consumer reads from it; a producer blocks while it is
	// full. Zero means unbounded.
	StreamBufferSize uint

	// WaitOnClose controls what Close does when the caller never called
	// WaitForAll explicitly: true (the default) waits for every
	// in-flight and queued task; false cancels outstanding work instead.
	WaitOnClose bool

	// MetricsProvider receives instrumentation from the pool and runtime
	// engine. Defaults to metrics.NewNoopProvider().
	MetricsProvider metrics.Provider

	// Logger receives diagnostic events: recovered panics, cancellation
	// notices. Defaults to slog.Default().
	Logger Logger
}

func defaultConfig() Config {
	return Config{
		FixedPoolSize:    0,
		StreamBufferSize: 0,
		WaitOnClose:      true,
		MetricsProvider:  metrics.NewNoopProvider(),
		Logger:           defaultLogger(),
	}
}

func validateConfig(cfg *Config) error {
	if cfg.MetricsProvider == nil {
		return fmt.Errorf("%w: MetricsProvider must not be nil", ErrInvalidConfig)
	}
	if cfg.Logger == nil {
		return fmt.Errorf("%w: Logger must not be nil", ErrInvalidConfig)
	}
	return nil
}
