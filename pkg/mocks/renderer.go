package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/memecanvas/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateSurfaceFunc func(width, height int) (ports.Surface, error)
	DecodeImageFunc   func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc   func(img image.Image, format ports.ImageFormat) ([]byte, error)

	// Surface is returned by CreateSurface when CreateSurfaceFunc is nil.
	Surface *Surface
}

func (m *Renderer) CreateSurface(width, height int) (ports.Surface, error) {
	if m.CreateSurfaceFunc != nil {
		return m.CreateSurfaceFunc(width, height)
	}
	if m.Surface == nil {
		m.Surface = NewSurface()
	}
	m.Surface.Resize(width, height)
	return m.Surface, nil
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format)
	}
	return []byte("png"), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Call is one recorded Surface operation.
type Call struct {
	Op       string // "resize", "clear", "fillRect", "drawImage", "fillText"
	Alpha    float64
	X, Y     float64
	W, H     float64
	Text     string
	Color    color.Color
	Image    image.Image
	Font     ports.Font
	Align    ports.TextAlign
	Baseline ports.TextBaseline
}

// Surface is a recording mock of ports.Surface.
// Text is measured as CharWidth per byte unless MeasureFunc is set.
type Surface struct {
	mu sync.Mutex

	width    int
	height   int
	alpha    float64
	font     ports.Font
	align    ports.TextAlign
	baseline ports.TextBaseline

	CharWidth   float64
	MeasureFunc func(text string, f ports.Font) float64

	Calls []Call
}

// NewSurface creates a recording surface measuring 10px per byte.
func NewSurface() *Surface {
	return &Surface{alpha: 1, CharWidth: 10}
}

func (m *Surface) record(c Call) {
	c.Alpha = m.alpha
	m.Calls = append(m.Calls, c)
}

func (m *Surface) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
	m.alpha = 1
	m.record(Call{Op: "resize", W: float64(width), H: float64(height)})
}

func (m *Surface) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *Surface) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Op: "clear"})
}

func (m *Surface) SetGlobalAlpha(alpha float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alpha = alpha
}

func (m *Surface) GlobalAlpha() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alpha
}

func (m *Surface) FillRect(x, y, w, h float64, c color.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Op: "fillRect", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Surface) DrawImageScaled(img image.Image, x, y, w, h float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Op: "drawImage", X: x, Y: y, W: w, H: h, Image: img})
}

func (m *Surface) SetFont(f ports.Font) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.font = f
}

func (m *Surface) SetTextAlign(a ports.TextAlign) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.align = a
}

func (m *Surface) SetTextBaseline(b ports.TextBaseline) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseline = b
}

func (m *Surface) MeasureText(text string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MeasureFunc != nil {
		return m.MeasureFunc(text, m.font)
	}
	return float64(len(text)) * m.CharWidth
}

func (m *Surface) FillText(text string, x, y float64, c color.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{
		Op: "fillText", X: x, Y: y, Text: text, Color: c,
		Font: m.font, Align: m.align, Baseline: m.baseline,
	})
}

func (m *Surface) Image() image.Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

// CallsOf returns the recorded calls with the given op.
func (m *Surface) CallsOf(op string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Call
	for _, c := range m.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the text of every fillText call in order.
func (m *Surface) Texts() []string {
	var out []string
	for _, c := range m.CallsOf("fillText") {
		out = append(out, c.Text)
	}
	return out
}

// Reset drops recorded calls.
func (m *Surface) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = nil
}

var _ ports.Surface = (*Surface)(nil)
