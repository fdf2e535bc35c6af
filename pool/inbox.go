package pool

import (
	"container/heap"
	"sync"
)

// inboxHeap orders items highest-priority first, and within a priority level
// by ascending sequence number (FIFO). Grounded on the max-heap-by-priority,
// FIFO-tiebreak-by-CreatedAt technique in infblueocean-Observer's
// internal/work/priority_queue.go, adapted from a single shared queue to one
// heap per worker.
type inboxHeap []*item

func (h inboxHeap) Len() int { return len(h) }

func (h inboxHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h inboxHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *inboxHeap) Push(x interface{}) {
	*h = append(*h, x.(*item))
}

func (h *inboxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// inbox is a closable, priority-ordered mailbox owned by exactly one worker.
// Push never blocks; Pop blocks until an item is available or the inbox is
// closed and drained.
type inbox struct {
	mu     sync.Mutex
	cond   *sync.Cond
	heap   inboxHeap
	closed bool
}

func newInbox() *inbox {
	b := &inbox{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// push enqueues it. It is a no-op once the inbox has been closed.
func (b *inbox) push(it *item) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	heap.Push(&b.heap, it)
	b.cond.Signal()
}

// pop blocks until an item is ready, or returns ok=false once the inbox is
// closed and empty.
func (b *inbox) pop() (it *item, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for len(b.heap) == 0 {
		if b.closed {
			return nil, false
		}
		b.cond.Wait()
	}
	return heap.Pop(&b.heap).(*item), true
}

// close marks the inbox closed and wakes any goroutine blocked in pop. Items
// already queued are still delivered; after they drain, pop returns false.
func (b *inbox) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.cond.Broadcast()
}

// clear cancels and discards every task still waiting in the inbox. It does
// not touch a task already handed to the worker's current drive loop; that
// one finishes (or observes cancellation) on its own.
func (b *inbox) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, it := range b.heap {
		if !it.isBarrier() {
			it.task.Cancel()
		}
	}
	b.heap = nil
}
