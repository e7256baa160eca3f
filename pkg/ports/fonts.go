package ports

import "golang.org/x/image/font"

// FontSource resolves font requests into faces.
type FontSource interface {
	// Face returns a face for the requested family, weight and point size.
	// Unknown families resolve to a fallback face.
	Face(f Font) (font.Face, error)

	// Ready is closed once every configured font has finished loading.
	Ready() <-chan struct{}
}
