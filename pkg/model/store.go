package model

import (
	"image"
	"sync"
)

// Listener is notified after every configuration or asset change.
// It receives no payload; listeners read the current state from the store.
type Listener func()

// Store owns the current configuration and assets and serializes writes.
//
// Every write runs the mutation and then notifies listeners synchronously
// while still holding the write lock, so each mutation produces one
// consistent notification before the next write begins. Listeners must
// not write to the store.
type Store struct {
	writeMu sync.Mutex

	mu        sync.RWMutex
	cfg       Config
	assets    Assets
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewStore creates a store holding cfg.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg.Clone()}
}

// Config returns a snapshot of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Assets returns the current raster assets.
func (s *Store) Assets() Assets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assets
}

// HasBackground reports whether a drawable background image is loaded.
func (s *Store) HasBackground() bool {
	return s.Assets().HasBackground()
}

// Subscribe registers fn for change notifications and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Update applies fn to the configuration and notifies listeners.
func (s *Store) Update(fn func(*Config)) {
	s.write(func() { fn(&s.cfg) })
}

// SetBackgroundPosition records a dragged background position.
func (s *Store) SetBackgroundPosition(p Point) {
	s.write(func() { s.cfg.BackgroundPosition = &p })
}

// SetBackground replaces the background image. A nil image removes it.
func (s *Store) SetBackground(img image.Image) {
	s.write(func() { s.assets.Background = img })
}

// SetWatermark replaces the watermark image. A nil image removes it.
func (s *Store) SetWatermark(img image.Image) {
	s.write(func() { s.assets.Watermark = img })
}

func (s *Store) write(mutate func()) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	mutate()
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.fn
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
