package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts surface creation and raster encoding.
type Renderer interface {
	// CreateSurface creates a new drawing surface with the specified dimensions.
	// It returns an error wrapping pipeline.ErrUnsupportedSurface when no surface can be obtained.
	CreateSurface(width, height int) (Surface, error)

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat) ([]byte, error)
}

// Surface is the 2D drawing surface the render pipeline paints on.
// It mirrors the subset of an HTML canvas 2D context the layers need.
type Surface interface {
	// Resize sets the surface dimensions and clears every pixel.
	Resize(width, height int)

	// Size returns the current surface dimensions.
	Size() (width, height int)

	// Clear makes every pixel fully transparent.
	Clear()

	// SetGlobalAlpha sets the alpha applied to every following draw call.
	SetGlobalAlpha(alpha float64)

	// GlobalAlpha returns the current global alpha.
	GlobalAlpha() float64

	// FillRect fills a rectangle with the given color.
	FillRect(x, y, w, h float64, c color.Color)

	// DrawImageScaled draws the whole source image into the destination rectangle.
	DrawImageScaled(img image.Image, x, y, w, h float64)

	// SetFont selects the font used by MeasureText and FillText.
	SetFont(f Font)

	// SetTextAlign sets the horizontal anchor of FillText.
	SetTextAlign(a TextAlign)

	// SetTextBaseline sets the vertical anchor of FillText.
	SetTextBaseline(b TextBaseline)

	// MeasureText returns the advance width of text in the current font.
	MeasureText(text string) float64

	// FillText draws text anchored at (x, y).
	FillText(text string, x, y float64, c color.Color)

	// Image returns the surface pixels.
	Image() image.Image
}

// Font describes a font request.
type Font struct {
	Family string
	Size   float64 // points
	Weight FontWeight
}

// FontWeight selects a face weight.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// String returns the CSS keyword for the weight.
func (w FontWeight) String() string {
	if w == WeightBold {
		return "bold"
	}
	return "normal"
}

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// String returns the keyword used in settings files.
func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseTextAlign parses "left", "center" or "right". Unknown values map to AlignLeft.
func ParseTextAlign(s string) TextAlign {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// TextBaseline specifies the vertical anchor of drawn text.
type TextBaseline int

const (
	// BaselineAlphabetic anchors y at the glyph baseline.
	BaselineAlphabetic TextBaseline = iota
	// BaselineTop anchors y at the top of the em box.
	BaselineTop
	// BaselineBottom anchors y at the bottom of the em box.
	BaselineBottom
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	// FormatAuto detects the format from the data when decoding.
	FormatAuto
)
