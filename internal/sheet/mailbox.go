package sheet

import (
	"sync"
	"time"
)

// op is a command executed on the motion goroutine.
type op func(now time.Time)

// mailbox carries ops from control goroutines to the motion goroutine.
// Posting never blocks and never drops.
type mailbox struct {
	mu    sync.Mutex
	queue []op
	wake  chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{wake: make(chan struct{}, 1)}
}

func (b *mailbox) post(o op) {
	b.mu.Lock()
	b.queue = append(b.queue, o)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// drain returns the queued ops in posting order and empties the queue.
func (b *mailbox) drain() []op {
	b.mu.Lock()
	defer b.mu.Unlock()
	q := b.queue
	b.queue = nil
	return q
}
