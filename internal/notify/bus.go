// Package notify provides a bounded in-process notification bus. It
// replaces ambient mutable notification state with an owned component:
// constructed once at startup, injected where needed, closed on
// shutdown.
package notify

import (
	"sync"
	"time"
)

// Event is a user-facing notification.
type Event struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Notification levels.
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Bus fans events out to subscribers through a bounded queue. Publish
// never blocks: when the queue is full the oldest pending event is
// dropped in favor of the new one. After Close, Publish is a no-op and
// subscriber channels are closed once the queue drains.
type Bus struct {
	mu     sync.Mutex
	subs   []chan Event
	queue  chan Event
	done   chan struct{}
	closed bool
}

// NewBus creates a bus with the given queue capacity and starts its
// delivery goroutine. Capacity must be at least 1.
func NewBus(capacity int) *Bus {
	if capacity < 1 {
		capacity = 1
	}
	b := &Bus{
		queue: make(chan Event, capacity),
		done:  make(chan struct{}),
	}
	go b.deliver()
	return b
}

// Publish enqueues e for delivery, dropping the oldest pending event
// when the queue is full.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	for {
		select {
		case b.queue <- e:
			return
		default:
		}
		// Queue full: make room by discarding the oldest event.
		select {
		case <-b.queue:
		default:
		}
	}
}

// Subscribe returns a channel receiving all events published after the
// call. The channel is closed when the bus closes. A slow subscriber
// blocks delivery to all subscribers; consumers are expected to drain
// promptly.
func (b *Bus) Subscribe() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan Event, 1)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Close stops the bus. Pending events are drained to subscribers before
// their channels are closed. Safe to call once.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()
	<-b.done
}

func (b *Bus) deliver() {
	for e := range b.queue {
		b.mu.Lock()
		subs := make([]chan Event, len(b.subs))
		copy(subs, b.subs)
		b.mu.Unlock()
		for _, ch := range subs {
			ch <- e
		}
	}
	b.mu.Lock()
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.mu.Unlock()
	close(b.done)
}
