// Package model holds the meme configuration, its raster assets and the store that
// publishes changes to the render pipeline.
package model

import (
	"image"
	"image/color"

	"github.com/user/memecanvas/pkg/ports"
)

// AspectRatio names a canvas preset.
type AspectRatio string

const (
	AspectDefault   AspectRatio = "default"
	AspectUSLetter  AspectRatio = "us-letter"
	AspectUSTabloid AspectRatio = "us-tabloid"
	AspectA4        AspectRatio = "a4"
	AspectA3        AspectRatio = "a3"
)

// AspectRatios lists every known preset in display order.
var AspectRatios = []AspectRatio{AspectDefault, AspectUSLetter, AspectUSTabloid, AspectA4, AspectA3}

// Valid reports whether a is a known preset.
func (a AspectRatio) Valid() bool {
	for _, known := range AspectRatios {
		if a == known {
			return true
		}
	}
	return false
}

// Point is a canvas position in pixels.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Config is the full set of user-editable meme settings.
// A nil color means the corresponding fill is disabled.
type Config struct {
	// Canvas
	Width        int
	Height       int
	PaddingRatio float64
	AspectRatio  AspectRatio

	// Fills
	BackgroundColor color.Color
	OverlayColor    color.Color
	OverlayAlpha    float64

	// Background image
	ImageOpacity       float64
	ImageScale         float64
	BackgroundPosition *Point // nil until the first drag
	// BackgroundFollowsDrag draws the background around BackgroundPosition
	// at ImageScale instead of centering it.
	BackgroundFollowsDrag bool

	// Watermark
	WatermarkMaxWidthRatio float64
	WatermarkAlpha         float64

	// Typography
	FontColor                color.Color
	FontFamily               string
	FontSize                 float64
	EventInfoFontSize        float64
	EventDescriptionFontSize float64
	CreditSize               float64
	TextAlign                ports.TextAlign

	// Text
	HeadlineText    string
	DateTimeText    string
	LocationText    string
	LocationTwoText string
	WebsiteURLText  string
	CreditText      string
	ShowCredit      bool

	// Export
	DownloadName string
}

// Clone returns a copy of c that shares no mutable state with it.
func (c Config) Clone() Config {
	if c.BackgroundPosition != nil {
		p := *c.BackgroundPosition
		c.BackgroundPosition = &p
	}
	return c
}

// Defaults returns the configuration used when no settings are supplied.
func Defaults() Config {
	return Config{
		Width:        824,
		Height:       1060,
		PaddingRatio: 0.08,
		AspectRatio:  AspectDefault,

		OverlayAlpha: 0.5,

		ImageOpacity: 1,
		ImageScale:   1,

		WatermarkMaxWidthRatio: 0.25,
		WatermarkAlpha:         1,

		FontColor:                color.RGBA{R: 255, G: 255, B: 255, A: 255},
		FontFamily:               "IBM Plex Sans",
		FontSize:                 64,
		EventInfoFontSize:        24,
		EventDescriptionFontSize: 16,
		CreditSize:               12,
		TextAlign:                ports.AlignLeft,

		HeadlineText: "Save The Date",

		DownloadName: "share",
	}
}

// Assets are the decoded raster images referenced by a configuration.
// Images are never mutated, only replaced.
type Assets struct {
	Background image.Image
	Watermark  image.Image
}

// ImageSize returns the pixel dimensions of img, or zero for a nil image.
func ImageSize(img image.Image) (width, height int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// HasBackground reports whether a drawable background image is present.
func (a Assets) HasBackground() bool {
	w, h := ImageSize(a.Background)
	return w > 0 && h > 0
}
