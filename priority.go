package spawngroup

import "github.com/ygrebnov/spawngroup/internal/priority"

// Priority ranks a spawned child task for per-worker dispatch order and for
// the order residual tasks are drained in during WaitForAll. It is a total
// order; higher values are serviced first by a worker whenever more than
// one task is waiting in its inbox.
type Priority = priority.Priority

// The six user-visible priority levels, ordered lowest to highest.
const (
	Background    = priority.Background
	Low           = priority.Low
	Utility       = priority.Utility
	Medium        = priority.Medium
	High          = priority.High
	UserInitiated = priority.UserInitiated
)

// DefaultPriority is applied by Spawn/SpawnUnlessCancelled callers that do
// not need finer control.
const DefaultPriority = Medium
