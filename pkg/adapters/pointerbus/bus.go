// Package pointerbus provides an in-process PointerTracker that fans pointer
// events out to the handlers tracking a gesture.
package pointerbus

import (
	"sort"
	"sync"

	"github.com/user/memecanvas/pkg/ports"
)

// Bus implements ports.PointerTracker. Events delivered with Move and Up go to
// every handler registered at the time of the call.
type Bus struct {
	mu       sync.Mutex
	handlers map[int]ports.PointerHandler
	nextID   int
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[int]ports.PointerHandler)}
}

// Track implements ports.PointerTracker.
func (b *Bus) Track(h ports.PointerHandler) (release func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Move delivers a pointer-move event.
func (b *Bus) Move(ev ports.PointerEvent) {
	for _, h := range b.snapshot() {
		h.PointerMove(ev)
	}
}

// Up delivers a pointer-up event.
func (b *Bus) Up(ev ports.PointerEvent) {
	for _, h := range b.snapshot() {
		h.PointerUp(ev)
	}
}

// Active returns the number of registered handlers.
func (b *Bus) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// snapshot returns handlers in registration order. Dispatch runs outside the
// lock so handlers may release themselves.
func (b *Bus) snapshot() []ports.PointerHandler {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]ports.PointerHandler, len(ids))
	for i, id := range ids {
		out[i] = b.handlers[id]
	}
	return out
}

// Ensure Bus implements ports.PointerTracker
var _ ports.PointerTracker = (*Bus)(nil)
