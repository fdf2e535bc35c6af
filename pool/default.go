package pool

import (
	"context"
	"runtime"

	"github.com/ygrebnov/spawngroup/metrics"
)

// NewDefault builds a Pool sized to runtime.GOMAXPROCS(0), the default a
// group uses when the caller does not request a specific worker count.
// dispatchLatency may be nil to skip recording dispatch-latency
// observations.
func NewDefault(ctx context.Context, dispatchLatency metrics.Histogram) Pool {
	return newPool(ctx, runtime.GOMAXPROCS(0), dispatchLatency)
}
