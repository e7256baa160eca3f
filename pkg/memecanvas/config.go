// Package memecanvas provides a high-level API for rendering promotional images.
package memecanvas

import (
	"image/color"
	"math"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/ports"
)

// ConfigBuilder provides a fluent interface for building a model.Config.
type ConfigBuilder struct {
	config model.Config
}

// NewConfigBuilder creates a new ConfigBuilder with default settings.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: model.Defaults()}
}

// NewConfigBuilderFrom starts from an existing configuration.
func NewConfigBuilderFrom(cfg model.Config) *ConfigBuilder {
	return &ConfigBuilder{config: cfg.Clone()}
}

// Build returns the final configuration, applying validation and constraints.
// Ratios and alphas are clamped to [0, 1]; non-positive sizes fall back to
// the defaults; an unknown aspect ratio becomes AspectDefault.
func (b *ConfigBuilder) Build() model.Config {
	cfg := b.config.Clone()
	def := model.Defaults()

	cfg.PaddingRatio = clamp01(cfg.PaddingRatio)
	cfg.OverlayAlpha = clamp01(cfg.OverlayAlpha)
	cfg.ImageOpacity = clamp01(cfg.ImageOpacity)
	cfg.WatermarkMaxWidthRatio = clamp01(cfg.WatermarkMaxWidthRatio)
	cfg.WatermarkAlpha = clamp01(cfg.WatermarkAlpha)

	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.ImageScale <= 0 {
		cfg.ImageScale = def.ImageScale
	}
	positive(&cfg.FontSize, def.FontSize)
	positive(&cfg.EventInfoFontSize, def.EventInfoFontSize)
	positive(&cfg.EventDescriptionFontSize, def.EventDescriptionFontSize)
	positive(&cfg.CreditSize, def.CreditSize)

	if !cfg.AspectRatio.Valid() {
		cfg.AspectRatio = model.AspectDefault
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = def.FontFamily
	}

	return cfg
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func positive(v *float64, fallback float64) {
	if *v <= 0 {
		*v = fallback
	}
}

// WithSize sets the base canvas size used by the default aspect ratio.
func (b *ConfigBuilder) WithSize(width, height int) *ConfigBuilder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// WithPaddingRatio sets the padding as a share of the canvas width.
func (b *ConfigBuilder) WithPaddingRatio(ratio float64) *ConfigBuilder {
	b.config.PaddingRatio = ratio
	return b
}

// WithAspectRatio selects a canvas preset.
func (b *ConfigBuilder) WithAspectRatio(a model.AspectRatio) *ConfigBuilder {
	b.config.AspectRatio = a
	return b
}

// WithBackgroundColor sets the solid fill. Nil disables it.
func (b *ConfigBuilder) WithBackgroundColor(c color.Color) *ConfigBuilder {
	b.config.BackgroundColor = c
	return b
}

// WithOverlay sets the overlay tint and its alpha. A nil color disables it.
func (b *ConfigBuilder) WithOverlay(c color.Color, alpha float64) *ConfigBuilder {
	b.config.OverlayColor = c
	b.config.OverlayAlpha = alpha
	return b
}

// WithImageOpacity sets the background photo alpha.
func (b *ConfigBuilder) WithImageOpacity(opacity float64) *ConfigBuilder {
	b.config.ImageOpacity = opacity
	return b
}

// WithImageScale sets the scale used for drag extents and follow-drag drawing.
func (b *ConfigBuilder) WithImageScale(scale float64) *ConfigBuilder {
	b.config.ImageScale = scale
	return b
}

// WithBackgroundFollowsDrag draws the background around the dragged position.
func (b *ConfigBuilder) WithBackgroundFollowsDrag(follow bool) *ConfigBuilder {
	b.config.BackgroundFollowsDrag = follow
	return b
}

// WithWatermark sets the watermark width budget and alpha.
func (b *ConfigBuilder) WithWatermark(maxWidthRatio, alpha float64) *ConfigBuilder {
	b.config.WatermarkMaxWidthRatio = maxWidthRatio
	b.config.WatermarkAlpha = alpha
	return b
}

// WithFontColor sets the text color.
func (b *ConfigBuilder) WithFontColor(c color.Color) *ConfigBuilder {
	b.config.FontColor = c
	return b
}

// WithFontFamily sets the credit line family.
func (b *ConfigBuilder) WithFontFamily(family string) *ConfigBuilder {
	b.config.FontFamily = family
	return b
}

// WithFontSizes sets the headline, event info and description sizes in points.
func (b *ConfigBuilder) WithFontSizes(headline, eventInfo, description float64) *ConfigBuilder {
	b.config.FontSize = headline
	b.config.EventInfoFontSize = eventInfo
	b.config.EventDescriptionFontSize = description
	return b
}

// WithTextAlign sets the alignment of every text block except the credit.
func (b *ConfigBuilder) WithTextAlign(a ports.TextAlign) *ConfigBuilder {
	b.config.TextAlign = a
	return b
}

// WithHeadline sets the headline text.
func (b *ConfigBuilder) WithHeadline(text string) *ConfigBuilder {
	b.config.HeadlineText = text
	return b
}

// WithEventInfo sets the date/time and the two location lines.
func (b *ConfigBuilder) WithEventInfo(dateTime, location, locationTwo string) *ConfigBuilder {
	b.config.DateTimeText = dateTime
	b.config.LocationText = location
	b.config.LocationTwoText = locationTwo
	return b
}

// WithWebsiteURL sets the URL printed next to the watermark.
func (b *ConfigBuilder) WithWebsiteURL(url string) *ConfigBuilder {
	b.config.WebsiteURLText = url
	return b
}

// WithCredit sets and shows the credit line.
func (b *ConfigBuilder) WithCredit(text string, size float64) *ConfigBuilder {
	b.config.CreditText = text
	b.config.CreditSize = size
	b.config.ShowCredit = true
	return b
}

// WithDownloadName sets the export file name without extension.
func (b *ConfigBuilder) WithDownloadName(name string) *ConfigBuilder {
	b.config.DownloadName = name
	return b
}
