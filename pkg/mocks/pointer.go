package mocks

import (
	"sync"

	"github.com/user/memecanvas/pkg/ports"
)

// PointerTracker is a mock implementation of ports.PointerTracker.
// It keeps the handlers that are currently tracked and counts releases.
type PointerTracker struct {
	mu       sync.Mutex
	handlers []ports.PointerHandler

	Tracked  int
	Released int
}

// NewPointerTracker creates a new mock PointerTracker.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

func (m *PointerTracker) Track(h ports.PointerHandler) func() {
	m.mu.Lock()
	m.handlers = append(m.handlers, h)
	m.Tracked++
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.Released++
			for i, x := range m.handlers {
				if x == h {
					m.handlers = append(m.handlers[:i], m.handlers[i+1:]...)
					return
				}
			}
		})
	}
}

// Active returns the number of handlers still tracked.
func (m *PointerTracker) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handlers)
}

// Move delivers a move event to every tracked handler.
func (m *PointerTracker) Move(x, y float64) {
	for _, h := range m.snapshot() {
		h.PointerMove(ports.PointerEvent{X: x, Y: y})
	}
}

// Up delivers an up event to every tracked handler.
func (m *PointerTracker) Up(x, y float64) {
	for _, h := range m.snapshot() {
		h.PointerUp(ports.PointerEvent{X: x, Y: y})
	}
}

func (m *PointerTracker) snapshot() []ports.PointerHandler {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.PointerHandler(nil), m.handlers...)
}

var _ ports.PointerTracker = (*PointerTracker)(nil)
