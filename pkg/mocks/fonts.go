package mocks

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/user/memecanvas/pkg/ports"
)

// FontSource is a mock implementation of ports.FontSource.
// It answers every request with basicfont.Face7x13 and is ready immediately
// unless constructed with NewPendingFontSource.
type FontSource struct {
	FaceFunc func(f ports.Font) (font.Face, error)

	Requests []ports.Font
	ready    chan struct{}
}

// NewFontSource creates a FontSource that is already ready.
func NewFontSource() *FontSource {
	ready := make(chan struct{})
	close(ready)
	return &FontSource{ready: ready}
}

// NewPendingFontSource creates a FontSource that becomes ready on MarkReady.
func NewPendingFontSource() *FontSource {
	return &FontSource{ready: make(chan struct{})}
}

func (m *FontSource) Face(f ports.Font) (font.Face, error) {
	m.Requests = append(m.Requests, f)
	if m.FaceFunc != nil {
		return m.FaceFunc(f)
	}
	return basicfont.Face7x13, nil
}

func (m *FontSource) Ready() <-chan struct{} {
	return m.ready
}

// MarkReady closes the ready channel.
func (m *FontSource) MarkReady() {
	close(m.ready)
}

var _ ports.FontSource = (*FontSource)(nil)
