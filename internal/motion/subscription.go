package motion

import "sync"

const (
	eventBufferSize = 16
	frameBufferSize = 4
)

// Subscription provides event channels for a subscriber.
//
// Changed and Animated carry the discrete notifications; Frames is the
// continuous position stream. Frames are dropped when the subscriber lags,
// since only the latest one matters.
type Subscription struct {
	Changed  <-chan ChangeEvent
	Animated <-chan AnimateEvent
	Frames   <-chan FrameEvent
	Done     <-chan struct{}

	// Internal write channels
	changeCh  chan ChangeEvent
	animateCh chan AnimateEvent
	frameCh   chan FrameEvent
	doneCh    chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		changeCh:  make(chan ChangeEvent, eventBufferSize),
		animateCh: make(chan AnimateEvent, eventBufferSize),
		frameCh:   make(chan FrameEvent, frameBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.Changed = s.changeCh
	s.Animated = s.animateCh
	s.Frames = s.frameCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendChange sends a change event (non-blocking).
func (s *Subscription) sendChange(e ChangeEvent) {
	select {
	case s.changeCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendAnimate sends an animate event (non-blocking).
func (s *Subscription) sendAnimate(e AnimateEvent) {
	select {
	case s.animateCh <- e:
	default:
	}
}

// sendFrame sends a frame event (non-blocking).
func (s *Subscription) sendFrame(e FrameEvent) {
	select {
	case s.frameCh <- e:
	default:
	}
}

// Listener receives machine notifications on the motion goroutine.
type Listener interface {
	OnChange(ChangeEvent)
	OnAnimate(AnimateEvent)
	OnFrame(FrameEvent)
}

// Hub fans machine notifications out to subscriptions. Its methods never
// block, so it is safe to call from the motion goroutine.
type Hub struct {
	mu     sync.RWMutex
	subs   []*Subscription
	closed bool
}

// Verify Hub implements Listener at compile time.
var _ Listener = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a new subscriber. Subscribing to a closed hub returns
// a subscription whose Done channel is already closed.
func (h *Hub) Subscribe() *Subscription {
	sub := newSubscription()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		sub.close()
		return sub
	}
	h.subs = append(h.subs, sub)
	return sub
}

// Close signals every subscriber that no further events will arrive.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, sub := range h.subs {
		sub.close()
	}
	h.subs = nil
}

// OnChange implements Listener.
func (h *Hub) OnChange(e ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		sub.sendChange(e)
	}
}

// OnAnimate implements Listener.
func (h *Hub) OnAnimate(e AnimateEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		sub.sendAnimate(e)
	}
}

// OnFrame implements Listener.
func (h *Hub) OnFrame(e FrameEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		sub.sendFrame(e)
	}
}
