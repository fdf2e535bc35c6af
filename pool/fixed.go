package pool

import (
	"context"

	"github.com/ygrebnov/spawngroup/metrics"
)

// NewFixed builds a Pool with exactly size worker goroutines. Panics if size
// is not greater than zero; pool size is a construction-time precondition,
// not a recoverable runtime error. dispatchLatency may be nil to skip
// recording dispatch-latency observations.
func NewFixed(ctx context.Context, size int, dispatchLatency metrics.Histogram) Pool {
	return newPool(ctx, size, dispatchLatency)
}
