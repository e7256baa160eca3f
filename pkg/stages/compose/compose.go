// Package compose implements the image layers of a meme: background photo,
// overlay tint, solid background color and watermark.
package compose

import (
	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

const (
	// backgroundLift moves the centered background up from the true center.
	backgroundLift = 40

	// Watermark offsets from the bottom-left padding corner.
	watermarkOffsetX = -22
	watermarkOffsetY = 10
)

// Layers returns the image layers in draw order.
//
// The solid background color is drawn after the photo and the overlay, so a
// configured color covers them wherever it is opaque. This order is kept as is.
func Layers(logger ports.Logger) []pipeline.Layer {
	log := logger.WithComponent("compose")
	return []pipeline.Layer{
		&Background{logger: log},
		&Overlay{logger: log},
		&SolidFill{logger: log},
		&Watermark{logger: log},
	}
}

// FitWidth scales (w, h) proportionally so the width does not exceed maxWidth.
// Images are never scaled up.
func FitWidth(w, h int, maxWidth float64) (float64, float64) {
	fw, fh := float64(w), float64(h)
	if maxWidth < fw {
		return maxWidth, fh * (maxWidth / fw)
	}
	return fw, fh
}

// Background draws the background photo.
type Background struct {
	logger ports.Logger
}

// Name implements pipeline.Layer.
func (l *Background) Name() string { return "background" }

// Placement returns where the background is drawn, or false if there is no background.
func (l *Background) Placement(f pipeline.Frame) (pipeline.Rect, bool) {
	bw, bh := model.ImageSize(f.Assets.Background)
	if bw == 0 || bh == 0 {
		return pipeline.Rect{}, false
	}

	cfg := f.Config
	width := float64(f.Geometry.Width)
	height := float64(f.Geometry.Height)

	if cfg.BackgroundFollowsDrag && cfg.BackgroundPosition != nil {
		tw := float64(bw) * cfg.ImageScale
		th := float64(bh) * cfg.ImageScale
		return pipeline.Rect{
			X: cfg.BackgroundPosition.X - tw/2,
			Y: cfg.BackgroundPosition.Y - th/2,
			W: tw,
			H: th,
		}, true
	}

	// Maximum width is computed from the unrounded padding ratio.
	mw := width - width*f.Geometry.PaddingRatio
	tw, th := FitWidth(bw, bh, mw)
	return pipeline.Rect{
		X: (width - tw) / 2,
		Y: (height-th)/2 - backgroundLift,
		W: tw,
		H: th,
	}, true
}

// Draw implements pipeline.Layer.
func (l *Background) Draw(f pipeline.Frame, s ports.Surface) pipeline.Frame {
	r, ok := l.Placement(f)
	if !ok {
		l.logger.Debug("Layer %s skipped: %s", l.Name(), pipeline.ErrMissingAsset)
		return f
	}

	s.SetGlobalAlpha(f.Config.ImageOpacity)
	s.DrawImageScaled(f.Assets.Background, r.X, r.Y, r.W, r.H)
	s.SetGlobalAlpha(1)

	l.logger.Debug("Background drawn at %.1f,%.1f size %.1fx%.1f", r.X, r.Y, r.W, r.H)
	return f
}

// Overlay tints the whole canvas with the overlay color.
type Overlay struct {
	logger ports.Logger
}

// Name implements pipeline.Layer.
func (l *Overlay) Name() string { return "overlay" }

// Draw implements pipeline.Layer.
func (l *Overlay) Draw(f pipeline.Frame, s ports.Surface) pipeline.Frame {
	if f.Config.OverlayColor == nil {
		return f
	}
	s.SetGlobalAlpha(f.Config.OverlayAlpha)
	s.FillRect(0, 0, float64(f.Geometry.Width), float64(f.Geometry.Height), f.Config.OverlayColor)
	s.SetGlobalAlpha(1)
	return f
}

// SolidFill paints the configured background color over the whole canvas.
type SolidFill struct {
	logger ports.Logger
}

// Name implements pipeline.Layer.
func (l *SolidFill) Name() string { return "background-color" }

// Draw implements pipeline.Layer.
func (l *SolidFill) Draw(f pipeline.Frame, s ports.Surface) pipeline.Frame {
	if f.Config.BackgroundColor == nil {
		return f
	}
	s.SetGlobalAlpha(1)
	s.FillRect(0, 0, float64(f.Geometry.Width), float64(f.Geometry.Height), f.Config.BackgroundColor)
	return f
}

// Watermark draws the watermark near the bottom-left corner and records its width.
type Watermark struct {
	logger ports.Logger
}

// Name implements pipeline.Layer.
func (l *Watermark) Name() string { return "watermark" }

// Placement returns where the watermark is drawn, or false if it is not loaded.
// The returned width is also the on-canvas width recorded in the frame.
func (l *Watermark) Placement(f pipeline.Frame) (pipeline.Rect, bool) {
	ww, wh := model.ImageSize(f.Assets.Watermark)
	if ww == 0 || wh == 0 {
		return pipeline.Rect{W: float64(ww)}, false
	}

	geo := f.Geometry
	padding := float64(geo.Padding)
	mw := float64(geo.Width) * f.Config.WatermarkMaxWidthRatio
	tw, th := FitWidth(ww, wh, mw)

	return pipeline.Rect{
		X: padding + watermarkOffsetX,
		Y: float64(geo.Height) - padding/2 - th + watermarkOffsetY,
		W: tw,
		H: th,
	}, true
}

// Draw implements pipeline.Layer.
func (l *Watermark) Draw(f pipeline.Frame, s ports.Surface) pipeline.Frame {
	r, ok := l.Placement(f)
	f.WatermarkWidth = r.W
	if !ok {
		l.logger.Debug("Layer %s skipped: %s", l.Name(), pipeline.ErrMissingAsset)
		return f
	}

	s.SetGlobalAlpha(f.Config.WatermarkAlpha)
	s.DrawImageScaled(f.Assets.Watermark, r.X, r.Y, r.W, r.H)
	s.SetGlobalAlpha(1)
	return f
}
