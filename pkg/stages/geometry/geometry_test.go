package geometry

import (
	"context"
	"testing"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
)

func baseConfig() model.Config {
	cfg := model.Defaults()
	cfg.Width = 700
	cfg.Height = 500
	cfg.PaddingRatio = 0.05
	cfg.FontSize = 64
	cfg.EventInfoFontSize = 20
	cfg.EventDescriptionFontSize = 14
	return cfg
}

func TestResolve_PresetTable(t *testing.T) {
	tests := []struct {
		aspect   model.AspectRatio
		expected pipeline.Geometry
	}{
		{
			aspect: model.AspectDefault,
			expected: pipeline.Geometry{
				Width: 700, Height: 500, Padding: 35, PaddingRatio: 0.05,
				FontSize: 64, EventInfoFontSize: 20, EventDescriptionFontSize: 14,
			},
		},
		{
			aspect: model.AspectUSLetter,
			expected: pipeline.Geometry{
				Width: 824, Height: 1060, Padding: 41, PaddingRatio: 0.05,
				FontSize: 64, EventInfoFontSize: 20, EventDescriptionFontSize: 14,
			},
		},
		{
			aspect: model.AspectUSTabloid,
			expected: pipeline.Geometry{
				Width: 1060, Height: 1620, Padding: 53, PaddingRatio: 0.05,
				FontSize: 150, EventInfoFontSize: 32, EventDescriptionFontSize: 22,
			},
		},
		{
			aspect: model.AspectA4,
			expected: pipeline.Geometry{
				Width: 820, Height: 1100, Padding: 41, PaddingRatio: 0.05,
				FontSize: 64, EventInfoFontSize: 20, EventDescriptionFontSize: 14,
			},
		},
		{
			aspect: model.AspectA3,
			expected: pipeline.Geometry{
				Width: 1100, Height: 1580, Padding: 55, PaddingRatio: 0.05,
				FontSize: 150, EventInfoFontSize: 32, EventDescriptionFontSize: 22,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.aspect), func(t *testing.T) {
			cfg := baseConfig()
			cfg.AspectRatio = tt.aspect

			got := Resolve(cfg)
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestResolve_A3OverridesBaseFontSize(t *testing.T) {
	cfg := baseConfig()
	cfg.FontSize = 64
	cfg.AspectRatio = model.AspectA3

	got := Resolve(cfg)

	if got.Width != 1100 || got.Height != 1580 {
		t.Errorf("expected 1100x1580, got %dx%d", got.Width, got.Height)
	}
	if got.FontSize != 150 {
		t.Errorf("expected fontSize 150, got %v", got.FontSize)
	}
}

func TestResolve_UnknownAspectKeepsBase(t *testing.T) {
	cfg := baseConfig()
	cfg.AspectRatio = "square"

	got := Resolve(cfg)
	if got.Width != cfg.Width || got.Height != cfg.Height {
		t.Errorf("expected base %dx%d, got %dx%d", cfg.Width, cfg.Height, got.Width, got.Height)
	}
}

func TestResolve_PaddingRoundsFromResolvedWidth(t *testing.T) {
	cfg := baseConfig()
	cfg.PaddingRatio = 0.08
	cfg.AspectRatio = model.AspectUSLetter

	// 824 * 0.08 = 65.92
	if got := Resolve(cfg).Padding; got != 66 {
		t.Errorf("expected padding 66, got %d", got)
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	cfg := baseConfig()
	cfg.AspectRatio = model.AspectUSTabloid

	Resolve(cfg)

	if cfg.Width != 700 || cfg.FontSize != 64 {
		t.Errorf("input config was modified: %+v", cfg)
	}
}

func TestStage_Execute(t *testing.T) {
	stage := NewStage()
	cfg := baseConfig()
	cfg.AspectRatio = model.AspectA4

	got, err := stage.Execute(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Resolve(cfg) {
		t.Errorf("Execute and Resolve disagree: %+v vs %+v", got, Resolve(cfg))
	}
}

func TestLookupPreset(t *testing.T) {
	if _, ok := LookupPreset(model.AspectDefault); ok {
		t.Error("default aspect ratio should have no preset")
	}
	p, ok := LookupPreset(model.AspectUSTabloid)
	if !ok {
		t.Fatal("expected us-tabloid preset")
	}
	if p.Width != 1060 || p.Height != 1620 {
		t.Errorf("unexpected tabloid preset %+v", p)
	}
}
