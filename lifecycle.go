package spawngroup

import "sync"

// lifecycleCoordinator runs an ordered shutdown sequence exactly once. It
// is a wiring helper: it doesn't own any resource itself, it just
// orchestrates the steps a group's Close needs to run in order, regardless
// of how many goroutines call Close concurrently.
type lifecycleCoordinator struct {
	drainOrCancel func()
	closePool     func()

	once sync.Once
}

func newLifecycleCoordinator(drainOrCancel, closePool func()) *lifecycleCoordinator {
	return &lifecycleCoordinator{drainOrCancel: drainOrCancel, closePool: closePool}
}

// Close runs drainOrCancel (WaitForAll or CancelAll, depending on how the
// group was configured), then closePool (stopping every worker goroutine).
// The sequence runs exactly once no matter how many goroutines call Close.
func (lc *lifecycleCoordinator) Close() {
	lc.once.Do(func() {
		if lc.drainOrCancel != nil {
			lc.drainOrCancel()
		}
		if lc.closePool != nil {
			lc.closePool()
		}
	})
}
