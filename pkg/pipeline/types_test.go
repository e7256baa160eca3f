package pipeline

import (
	"testing"

	"github.com/user/memecanvas/pkg/model"
)

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", "share.png"},
		{"share", "share.png"},
		{"gala-2026", "gala-2026.png"},
	}

	for _, tt := range tests {
		if got := ExportFilename(tt.name); got != tt.expected {
			t.Errorf("ExportFilename(%q) = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestNewFrame(t *testing.T) {
	geo := Geometry{Width: 824, Height: 1060, Padding: 66, FontSize: 64}
	f := NewFrame(model.Defaults(), model.Assets{}, geo)

	if f.HeadlineBoxHeight != 64 {
		t.Errorf("expected headline box to start at the font size, got %v", f.HeadlineBoxHeight)
	}
	if f.WatermarkWidth != 0 {
		t.Errorf("expected no watermark width, got %v", f.WatermarkWidth)
	}
	if f.Geometry != geo {
		t.Error("expected geometry to be carried")
	}
}
