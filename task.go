package spawngroup

// Result carries the outcome of one spawned child task: either a Value of
// type T, or a non-nil Err describing why no value was produced (the
// underlying closure returned an error or panicked). A task cancelled before
// it ran produces no Result at all. Exactly one of the two is meaningful at a time; Err nil
// means Value is authoritative.
//
// This is the Go rendering of a two-armed Result type: rather than a second
// generic parameter for the error arm, Err is the built-in error interface,
// matching how idiomatic Go functions already return (T, error) pairs.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the task completed without error.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}
