// Package ggsurface provides a drawing surface implementation using the gg library.
package ggsurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	_ "golang.org/x/image/webp"

	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

const jpegQuality = 90

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	fonts  ports.FontSource
	logger ports.Logger
}

// New creates a new Renderer drawing text with faces from fonts.
func New(fonts ports.FontSource, logger ports.Logger) *Renderer {
	return &Renderer{
		fonts:  fonts,
		logger: logger.WithComponent("surface"),
	}
}

// CreateSurface creates a new drawing surface.
func (r *Renderer) CreateSurface(width, height int) (ports.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("create %dx%d surface: %w", width, height, pipeline.ErrUnsupportedSurface)
	}
	s := &Surface{
		fonts:  r.fonts,
		logger: r.logger,
	}
	s.Resize(width, height)
	return s, nil
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	default:
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Surface implements ports.Surface using gg.Context.
type Surface struct {
	dc     *gg.Context
	fonts  ports.FontSource
	logger ports.Logger

	alpha    float64
	font     ports.Font
	face     font.Face
	align    ports.TextAlign
	baseline ports.TextBaseline
}

// Resize replaces the context with a cleared one of the new size.
// Font, alignment and baseline carry over; global alpha resets to 1.
func (s *Surface) Resize(width, height int) {
	s.dc = gg.NewContext(width, height)
	s.alpha = 1
	if s.face != nil {
		s.dc.SetFontFace(s.face)
	}
}

// Size returns the surface dimensions.
func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

// SetGlobalAlpha sets the alpha applied to later draws, clamped to [0, 1].
func (s *Surface) SetGlobalAlpha(alpha float64) {
	s.alpha = math.Max(0, math.Min(1, alpha))
}

// GlobalAlpha returns the current global alpha.
func (s *Surface) GlobalAlpha() float64 {
	return s.alpha
}

// FillRect fills a rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(s.withAlpha(c))
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// DrawImageScaled draws img resampled into the destination rectangle.
func (s *Surface) DrawImageScaled(img image.Image, x, y, w, h float64) {
	tw, th := int(math.Round(w)), int(math.Round(h))
	if img == nil || tw <= 0 || th <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var src image.Image = scaled
	if s.alpha < 1 {
		src = fade(scaled, s.alpha)
	}
	s.dc.DrawImage(src, int(math.Round(x)), int(math.Round(y)))
}

// fade returns a copy of img with every pixel's alpha multiplied by alpha.
func fade(img *image.RGBA, alpha float64) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 255))})
	draw.DrawMask(dst, dst.Bounds(), img, img.Bounds().Min, mask, image.Point{}, draw.Over)
	return dst
}

// SetFont resolves and selects a font face. On failure the previous face stays active.
func (s *Surface) SetFont(f ports.Font) {
	if f == s.font && s.face != nil {
		return
	}
	face, err := s.fonts.Face(f)
	if err != nil {
		s.logger.Warn("Font %s unavailable: %s", f.Family, err)
		return
	}
	s.font = f
	s.face = face
	s.dc.SetFontFace(face)
}

// SetTextAlign sets the horizontal text anchor.
func (s *Surface) SetTextAlign(a ports.TextAlign) {
	s.align = a
}

// SetTextBaseline sets the vertical text anchor.
func (s *Surface) SetTextBaseline(b ports.TextBaseline) {
	s.baseline = b
}

// MeasureText returns the advance width of text.
func (s *Surface) MeasureText(text string) float64 {
	if s.face == nil {
		return 0
	}
	w, _ := s.dc.MeasureString(text)
	return w
}

// FillText draws text with the current font, alignment and baseline.
func (s *Surface) FillText(text string, x, y float64, c color.Color) {
	if s.face == nil {
		return
	}

	ax := 0.0
	switch s.align {
	case ports.AlignCenter:
		ax = 0.5
	case ports.AlignRight:
		ax = 1.0
	}

	metrics := s.face.Metrics()
	switch s.baseline {
	case ports.BaselineTop:
		y += float64(metrics.Ascent) / 64
	case ports.BaselineBottom:
		y -= float64(metrics.Descent) / 64
	}

	s.dc.SetColor(s.withAlpha(c))
	s.dc.DrawStringAnchored(text, x, y, ax, 0)
}

// Image returns the surface pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// withAlpha scales c by the global alpha.
func (s *Surface) withAlpha(c color.Color) color.Color {
	if s.alpha >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	k := s.alpha
	return color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	}
}

// Ensure Surface implements ports.Surface
var _ ports.Surface = (*Surface)(nil)
