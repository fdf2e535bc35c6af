package spawngroup

import "github.com/ygrebnov/spawngroup/metrics"

// Option configures a group via the With* entry points. Use WithFixedPoolSize,
// WithDefaultPoolSize, or leave the pool size unset to take the default.
type Option func(*configOptions)

type configOptions struct {
	cfg          Config
	poolSelected poolType
}

type poolType int

const (
	poolUnspecified poolType = iota
	poolDefault
	poolFixed
)

// WithFixedPoolSize selects a fixed-size worker pool with exactly n workers.
// Applying the option panics if n == 0, or if WithDefaultPoolSize was also supplied
// — the two are mutually exclusive, matching the teacher's
// WithFixedPool/WithDynamicPool conflict check.
func WithFixedPoolSize(n uint) Option {
	return func(co *configOptions) {
		if co.poolSelected != poolUnspecified && co.poolSelected != poolFixed {
			panic("spawngroup: conflicting pool options: WithFixedPoolSize and WithDefaultPoolSize both specified")
		}
		if n == 0 {
			panic(ErrPoolSizeZero)
		}
		co.poolSelected = poolFixed
		co.cfg.FixedPoolSize = n
	}
}

// WithDefaultPoolSize selects the default pool (sized to
// runtime.GOMAXPROCS(0)). This is the behavior when no pool option is given
// at all; the option exists so callers can say so explicitly.
func WithDefaultPoolSize() Option {
	return func(co *configOptions) {
		if co.poolSelected != poolUnspecified && co.poolSelected != poolDefault {
			panic("spawngroup: conflicting pool options: WithFixedPoolSize and WithDefaultPoolSize both specified")
		}
		co.poolSelected = poolDefault
		co.cfg.FixedPoolSize = 0
	}
}

// WithStreamBuffer sets the internal buffer size of the group's result
// stream (default 0, unbounded growable buffer).
func WithStreamBuffer(size uint) Option {
	return func(co *configOptions) { co.cfg.StreamBufferSize = size }
}

// WithoutWaitOnClose makes Close cancel outstanding work instead of
// waiting for it, for callers that already called WaitForAll or
// CancelAll explicitly and want Close to be a pure cleanup step.
func WithoutWaitOnClose() Option {
	return func(co *configOptions) { co.cfg.WaitOnClose = false }
}

// WithMetricsProvider wires an instrumentation provider into the group's
// runtime engine and pool. Defaults to metrics.NewNoopProvider().
func WithMetricsProvider(p metrics.Provider) Option {
	return func(co *configOptions) { co.cfg.MetricsProvider = p }
}

// WithLogger wires a diagnostic logger into the group. Defaults to a
// log/slog-backed Logger using slog.Default().
func WithLogger(l Logger) Option {
	return func(co *configOptions) { co.cfg.Logger = l }
}

func resolveOptions(opts []Option) Config {
	co := configOptions{cfg: defaultConfig(), poolSelected: poolUnspecified}
	for _, opt := range opts {
		if opt == nil {
			panic("spawngroup: nil option")
		}
		opt(&co)
	}

	if err := validateConfig(&co.cfg); err != nil {
		panic(err)
	}

	return co.cfg
}
