package text

import (
	"math"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

// Vertical offsets of the event info blocks below the headline box.
const (
	infoGap        = 80
	descriptionGap = 30
	urlLift        = 5
	urlGap         = 40
)

// Layers returns the text layers in draw order. The credit layer draws only
// when the configuration enables it.
func Layers(logger ports.Logger) []pipeline.Layer {
	log := logger.WithComponent("text")
	return []pipeline.Layer{
		Headline(log),
		DateTime(log),
		Location(log),
		LocationTwo(log),
		WebsiteURL(log),
		Credit(log),
	}
}

// infoTop is the y of the first event info line. It uses the nominal
// headline box height, not measured glyph extents.
func infoTop(f pipeline.Frame) float64 {
	geo := f.Geometry
	return float64(geo.Padding) + f.HeadlineBoxHeight + geo.FontSize/10 + infoGap
}

// Headline wraps the headline and records the headline box height.
func Headline(logger ports.Logger) *Block {
	return &Block{
		name:     "headline",
		baseline: ports.BaselineTop,
		logger:   logger,
		text:     func(cfg model.Config) string { return cfg.HeadlineText },
		font: func(f pipeline.Frame) ports.Font {
			return ports.Font{Family: HeadlineFamily, Size: f.Geometry.FontSize}
		},
		origin: func(f pipeline.Frame) (float64, float64) {
			padding := float64(f.Geometry.Padding)
			return padding, 1.5*padding + f.Geometry.FontSize/2
		},
		lineHeight: func(f pipeline.Frame) float64 {
			return math.Round(f.Geometry.FontSize * 1.2)
		},
		done: func(f pipeline.Frame, lines []Line) pipeline.Frame {
			f.HeadlineBoxHeight = HeadlineBoxHeight(f.Geometry.FontSize, len(lines))
			return f
		},
	}
}

// HeadlineBoxHeight is the nominal height of a headline with the given number of lines.
func HeadlineBoxHeight(fontSize float64, lines int) float64 {
	return math.Round(fontSize * 1.4 * float64(lines))
}

// DateTime draws the date and time on a single bold line.
func DateTime(logger ports.Logger) *Block {
	return &Block{
		name:     "date-time",
		baseline: ports.BaselineTop,
		logger:   logger,
		text:     func(cfg model.Config) string { return cfg.DateTimeText },
		font: func(f pipeline.Frame) ports.Font {
			return ports.Font{Family: InfoFamily, Size: f.Geometry.EventInfoFontSize, Weight: ports.WeightBold}
		},
		origin: func(f pipeline.Frame) (float64, float64) {
			return float64(f.Geometry.Padding), infoTop(f)
		},
	}
}

// Location draws the primary location on a single line.
func Location(logger ports.Logger) *Block {
	return &Block{
		name:     "location",
		baseline: ports.BaselineTop,
		logger:   logger,
		text:     func(cfg model.Config) string { return cfg.LocationText },
		font: func(f pipeline.Frame) ports.Font {
			return ports.Font{Family: InfoFamily, Size: f.Geometry.EventInfoFontSize}
		},
		origin: func(f pipeline.Frame) (float64, float64) {
			return float64(f.Geometry.Padding), infoTop(f) + f.Geometry.EventInfoFontSize*2
		},
	}
}

// LocationTwo wraps the secondary location or event description.
func LocationTwo(logger ports.Logger) *Block {
	return &Block{
		name:     "location-two",
		baseline: ports.BaselineTop,
		logger:   logger,
		text:     func(cfg model.Config) string { return cfg.LocationTwoText },
		font: func(f pipeline.Frame) ports.Font {
			return ports.Font{Family: InfoFamily, Size: f.Geometry.EventDescriptionFontSize}
		},
		origin: func(f pipeline.Frame) (float64, float64) {
			return float64(f.Geometry.Padding), infoTop(f) + f.Geometry.EventInfoFontSize*4 + descriptionGap
		},
		lineHeight: func(f pipeline.Frame) float64 {
			return math.Round(f.Geometry.EventDescriptionFontSize * 2.15)
		},
	}
}

// WebsiteURL wraps the website URL on the bottom baseline, right of the watermark.
// It must run after the watermark layer.
func WebsiteURL(logger ports.Logger) *Block {
	return &Block{
		name:     "website-url",
		baseline: ports.BaselineAlphabetic,
		logger:   logger,
		text:     func(cfg model.Config) string { return cfg.WebsiteURLText },
		font: func(f pipeline.Frame) ports.Font {
			return ports.Font{Family: URLFamily, Size: URLFontSize}
		},
		origin: func(f pipeline.Frame) (float64, float64) {
			geo := f.Geometry
			padding := float64(geo.Padding)
			return padding + f.WatermarkWidth + urlGap, float64(geo.Height) - padding - urlLift
		},
		// The step follows the headline size, not the URL's own size.
		lineHeight: func(f pipeline.Frame) float64 {
			return math.Round(f.Geometry.FontSize * 1.9)
		},
	}
}

// Credit draws the credit line bottom-left. It is off unless ShowCredit is set.
func Credit(logger ports.Logger) *Block {
	left := ports.AlignLeft
	return &Block{
		name:     "credit",
		baseline: ports.BaselineBottom,
		logger:   logger,
		align:    &left,
		enabled:  func(cfg model.Config) bool { return cfg.ShowCredit },
		text:     func(cfg model.Config) string { return cfg.CreditText },
		font: func(f pipeline.Frame) ports.Font {
			return ports.Font{Family: f.Config.FontFamily, Size: f.Config.CreditSize}
		},
		origin: func(f pipeline.Frame) (float64, float64) {
			geo := f.Geometry
			return float64(geo.Padding), float64(geo.Height - geo.Padding)
		},
	}
}
