package pipeline

import (
	"errors"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/ports"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrUnsupportedSurface means no drawing surface could be obtained; rendering is skipped.
	ErrUnsupportedSurface = errors.New("drawing surface unsupported")

	// ErrMissingAsset marks a layer skipped because its image is not loaded.
	// It is informational and never aborts a render.
	ErrMissingAsset = errors.New("asset not loaded")

	// ErrNoBackground means a drag was requested without a background image.
	ErrNoBackground = errors.New("no background image to drag")
)

// =============================================================================
// Geometry Stage Types
// =============================================================================

// Geometry is the concrete canvas geometry resolved from a configuration.
type Geometry struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Padding int `json:"padding"` // round(Width * PaddingRatio)

	PaddingRatio float64 `json:"paddingRatio"`

	FontSize                 float64 `json:"fontSize"`
	EventInfoFontSize        float64 `json:"eventInfoFontSize"`
	EventDescriptionFontSize float64 `json:"eventDescriptionFontSize"`
}

// Rect is a placement on the canvas in pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// =============================================================================
// Render Frame
// =============================================================================

// Frame is the per-render state threaded through the layers in draw order.
// Layers receive a Frame and return it, updated with any cross-layer values
// they produce.
type Frame struct {
	Config   model.Config
	Assets   model.Assets
	Geometry Geometry

	// HeadlineBoxHeight is the nominal height of the wrapped headline.
	// It starts at the resolved font size and is set by the headline layer.
	HeadlineBoxHeight float64

	// WatermarkWidth is the on-canvas width of the watermark, set by the
	// watermark layer and read by the website URL layer.
	WatermarkWidth float64
}

// NewFrame starts a frame for the given inputs.
func NewFrame(cfg model.Config, assets model.Assets, geo Geometry) Frame {
	return Frame{
		Config:            cfg,
		Assets:            assets,
		Geometry:          geo,
		HeadlineBoxHeight: geo.FontSize,
	}
}

// Layer is one discrete visual element drawn onto the surface.
type Layer interface {
	// Name identifies the layer in logs and debug output.
	Name() string

	// Draw paints the layer and returns the frame for the next layer.
	// Draw leaves the surface's global alpha at 1.
	Draw(f Frame, s ports.Surface) Frame
}

// =============================================================================
// Export
// =============================================================================

// DownloadHint is shown when the consumer cannot honor a suggested filename.
const DownloadHint = `Right-click button and select "Download Linked File..." to save image.`

// Export is the downloadable artifact of the last render.
type Export struct {
	Data     []byte // PNG bytes
	Filename string
	Hint     string
	Width    int
	Height   int

	// Placeholder is set when no surface could be obtained and Data holds
	// the static placeholder image instead of a render.
	Placeholder bool
}

// ExportFilename returns "{downloadName or share}.png".
func ExportFilename(downloadName string) string {
	if downloadName == "" {
		downloadName = "share"
	}
	return downloadName + ".png"
}

// Cursor is the pointer affordance shown over the render surface.
type Cursor string

const (
	CursorDefault Cursor = "default"
	CursorMove    Cursor = "move"
)
