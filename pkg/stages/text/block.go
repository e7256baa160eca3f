package text

import (
	"image/color"
	"math"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

// Font families requested by the text layers.
const (
	HeadlineFamily = "folsom-web"
	InfoFamily     = "IBM Plex Sans"
	URLFamily      = "katwijk-mono-web"

	// URLFontSize is the fixed point size of the website URL.
	URLFontSize = 18
)

// maxWidthRatio is the share of the canvas width a wrapped line may use.
const maxWidthRatio = 0.75

// Line is one positioned line of text.
type Line struct {
	Text string
	X    float64
	Y    float64
}

// Block is a text layer: one configuration field laid out at a field-specific anchor.
type Block struct {
	name     string
	baseline ports.TextBaseline

	// text selects the field to draw.
	text func(cfg model.Config) string
	// font returns the font for the field.
	font func(f pipeline.Frame) ports.Font
	// origin returns the left-aligned x and the first line's y.
	origin func(f pipeline.Frame) (x, y float64)
	// lineHeight returns the step between wrapped lines. Nil means the field is a single line.
	lineHeight func(f pipeline.Frame) float64
	// align overrides the configured alignment when set.
	align *ports.TextAlign
	// enabled gates the whole layer when set.
	enabled func(cfg model.Config) bool
	// done receives the laid out lines and may record cross-layer state.
	done func(f pipeline.Frame, lines []Line) pipeline.Frame

	logger ports.Logger
}

// Name implements pipeline.Layer.
func (b *Block) Name() string { return b.name }

// Font returns the font the block requests for f.
func (b *Block) Font(f pipeline.Frame) ports.Font { return b.font(f) }

// Align returns the alignment the block uses for f.
func (b *Block) Align(f pipeline.Frame) ports.TextAlign {
	if b.align != nil {
		return *b.align
	}
	return f.Config.TextAlign
}

// Layout positions the block's lines. measure must use the block's font.
func (b *Block) Layout(f pipeline.Frame, measure MeasureFunc) []Line {
	geo := f.Geometry
	x, y := b.origin(f)
	x = anchorX(b.Align(f), x, geo)

	content := b.text(f.Config)
	if b.lineHeight == nil {
		return []Line{{Text: content, X: x, Y: y}}
	}

	maxWidth := math.Round(float64(geo.Width) * maxWidthRatio)
	step := b.lineHeight(f)
	wrapped := Wrap(content, maxWidth, measure)

	lines := make([]Line, len(wrapped))
	for i, s := range wrapped {
		lines[i] = Line{Text: s, X: x, Y: y + float64(i)*step}
	}
	return lines
}

// Draw implements pipeline.Layer.
func (b *Block) Draw(f pipeline.Frame, s ports.Surface) pipeline.Frame {
	if b.enabled != nil && !b.enabled(f.Config) {
		return f
	}

	s.SetGlobalAlpha(1)
	s.SetFont(b.font(f))
	s.SetTextAlign(b.Align(f))
	s.SetTextBaseline(b.baseline)

	lines := b.Layout(f, s.MeasureText)
	c := fontColor(f.Config)
	for _, l := range lines {
		s.FillText(l.Text, l.X, l.Y, c)
	}

	b.logger.Debug("Layer %s laid out %d lines", b.name, len(lines))
	if b.done != nil {
		f = b.done(f, lines)
	}
	return f
}

// anchorX returns the horizontal anchor for the alignment. Left keeps the
// field's own start.
func anchorX(a ports.TextAlign, left float64, geo pipeline.Geometry) float64 {
	switch a {
	case ports.AlignCenter:
		return float64(geo.Width) / 2
	case ports.AlignRight:
		return float64(geo.Width - geo.Padding)
	default:
		return left
	}
}

func fontColor(cfg model.Config) color.Color {
	if cfg.FontColor == nil {
		return color.Black
	}
	return cfg.FontColor
}
