package spawngroup

import "errors"

// Namespace prefixes every sentinel error this module defines, matching the
// teacher's convention of a single namespace constant shared across error
// values.
const Namespace = "spawngroup"

var (
	// ErrGroupClosed is logged by Spawn/SpawnUnlessCancelled once the
	// owning group has been closed (drop-equivalent already ran). Spawn
	// itself has no error return — a spawn attempt after Close is a
	// programmer error reported diagnostically, not a recoverable one.
	ErrGroupClosed = errors.New(Namespace + ": group is closed")

	// ErrPoolSizeZero is the panic payload for constructing a pool with
	// zero workers — a fatal precondition violation, not a recoverable
	// error (spec §7).
	ErrPoolSizeZero = errors.New(Namespace + ": pool size must be greater than zero")

	// ErrTaskPanicked wraps a recovered panic from inside a spawned
	// closure.
	ErrTaskPanicked = errors.New(Namespace + ": task execution panicked")

	// ErrTaskCancelled is logged when SpawnUnlessCancelled is called after
	// the owning group has already been cancelled.
	ErrTaskCancelled = errors.New(Namespace + ": task execution cancelled")

	// ErrInvalidConfig marks a Config rejected by validateConfig (a nil
	// MetricsProvider or Logger).
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
