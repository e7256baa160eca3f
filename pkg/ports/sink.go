package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate render results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveGeometryJSON saves the resolved geometry as JSON.
	SaveGeometryJSON(data []byte) error

	// SaveLayer saves the surface as it looked right after a layer was drawn.
	SaveLayer(index int, name string, img image.Image) error

	// SaveFrame saves the finished frame.
	SaveFrame(img image.Image) error
}
