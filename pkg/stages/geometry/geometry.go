// Package geometry implements the geometry resolution stage.
package geometry

import (
	"context"
	"math"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
)

// Stage resolves a configuration into concrete canvas geometry.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new geometry stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute resolves the geometry for cfg.
func (s *Stage) Execute(ctx context.Context, cfg model.Config) (pipeline.Geometry, error) {
	return Resolve(cfg), nil
}

// Preset is the set of fields an aspect ratio overrides.
// Zero font sizes keep the base value.
type Preset struct {
	Width                    int
	Height                   int
	FontSize                 float64
	EventInfoFontSize        float64
	EventDescriptionFontSize float64
}

// presets is the aspect-ratio table. AspectDefault is absent on purpose:
// it keeps every base value.
var presets = map[model.AspectRatio]Preset{
	model.AspectUSLetter:  {Width: 824, Height: 1060},
	model.AspectUSTabloid: {Width: 1060, Height: 1620, FontSize: 150, EventInfoFontSize: 32, EventDescriptionFontSize: 22},
	model.AspectA4:        {Width: 820, Height: 1100},
	model.AspectA3:        {Width: 1100, Height: 1580, FontSize: 150, EventInfoFontSize: 32, EventDescriptionFontSize: 22},
}

// LookupPreset returns the overrides for a, if any.
func LookupPreset(a model.AspectRatio) (Preset, bool) {
	p, ok := presets[a]
	return p, ok
}

// Resolve applies the aspect-ratio preset to the base configuration.
// Padding is recomputed from the resolved width.
func Resolve(cfg model.Config) pipeline.Geometry {
	geo := pipeline.Geometry{
		Width:                    cfg.Width,
		Height:                   cfg.Height,
		PaddingRatio:             cfg.PaddingRatio,
		FontSize:                 cfg.FontSize,
		EventInfoFontSize:        cfg.EventInfoFontSize,
		EventDescriptionFontSize: cfg.EventDescriptionFontSize,
	}

	if p, ok := presets[cfg.AspectRatio]; ok {
		geo.Width = p.Width
		geo.Height = p.Height
		if p.FontSize > 0 {
			geo.FontSize = p.FontSize
		}
		if p.EventInfoFontSize > 0 {
			geo.EventInfoFontSize = p.EventInfoFontSize
		}
		if p.EventDescriptionFontSize > 0 {
			geo.EventDescriptionFontSize = p.EventDescriptionFontSize
		}
	}

	geo.Padding = int(math.Round(float64(geo.Width) * geo.PaddingRatio))
	return geo
}
