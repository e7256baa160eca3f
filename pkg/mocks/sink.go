package mocks

import (
	"image"
	"sync"

	"github.com/user/memecanvas/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	GeometryJSON []byte
	LayerNames   []string
	Layers       map[int]image.Image
	Frame        image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Layers:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveGeometryJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GeometryJSON = data
	return nil
}

func (m *DebugSink) SaveLayer(index int, name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayerNames = append(m.LayerNames, name)
	m.Layers[index] = img
	return nil
}

func (m *DebugSink) SaveFrame(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frame = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                           { return false }
func (m *NullSink) SaveGeometryJSON(data []byte) error                      { return nil }
func (m *NullSink) SaveLayer(index int, name string, img image.Image) error { return nil }
func (m *NullSink) SaveFrame(img image.Image) error                         { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
