// Package spawngroup provides structured-concurrency scoped groups for
// spawning prioritized child tasks and collecting their results.
//
// Entry points
//   - WithValueGroup / WithErrorGroup / WithDiscardingGroup: open a scoped
//     group, run body, and close the group (draining or cancelling
//     outstanding work, per Options) before returning.
//   - Collect / CollectStream / Map / MapStream / ForEach / ForEachStream:
//     higher-level helpers built on top of the group façades for the common
//     fan-out-then-gather shape.
//
// Groups
//   - ValueGroup[T]: each task produces a T; a returned error is logged and
//     discarded rather than surfaced on the stream.
//   - ErrorGroup[T]: each task's outcome — value or error — is delivered as
//     a Result[T].
//   - DiscardingGroup: tasks run for effect only; nothing is streamed.
//
// Every group dispatches its tasks onto a fixed-size worker pool (package
// pool): one worker per priority-ordered inbox, round-robin submission, and
// a worker that suspends between polls of a not-yet-ready task rather than
// busy-waiting. Pool size defaults to runtime.GOMAXPROCS(0); use
// WithFixedPoolSize to pin it.
//
// Priority
// Six levels, from Background (serviced last) to UserInitiated (serviced
// first); DefaultPriority is Medium.
package spawngroup
