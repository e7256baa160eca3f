package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/ports"
)

func TestDefaultsMatchModel(t *testing.T) {
	got, err := Defaults().ToModel()
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	want := model.Defaults()

	if got.Width != want.Width || got.Height != want.Height || got.PaddingRatio != want.PaddingRatio {
		t.Errorf("canvas mismatch: got %dx%d/%v", got.Width, got.Height, got.PaddingRatio)
	}
	if got.FontSize != want.FontSize || got.EventInfoFontSize != want.EventInfoFontSize ||
		got.EventDescriptionFontSize != want.EventDescriptionFontSize || got.CreditSize != want.CreditSize {
		t.Error("font size mismatch")
	}
	if got.HeadlineText != want.HeadlineText || got.DownloadName != want.DownloadName {
		t.Error("text mismatch")
	}
	if got.BackgroundColor != nil || got.OverlayColor != nil {
		t.Error("expected fills disabled by default")
	}
	r, g, b, a := got.FontColor.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("expected white font color, got %v", got.FontColor)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
aspect_ratio: a3
headline_text: Harbor Gala
date_time_text: June 5, 7pm
overlay_color: "#000"
overlay_alpha: 0.3
text_align: center
show_credit: true
credit_text: Photo by Jane
background: assets/bg.jpg
background_position: {x: 100, y: 200}
fonts:
  folsom-web:
    regular: fonts/folsom.ttf
  IBM Plex Sans:
    regular: fonts/plex.ttf
    bold: fonts/plex-bold.ttf
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Width != 824 {
		t.Errorf("expected default width to survive, got %d", cfg.Width)
	}
	if cfg.Background != "assets/bg.jpg" {
		t.Errorf("expected background path, got %q", cfg.Background)
	}
	if cfg.Fonts["IBM Plex Sans"].Bold != "fonts/plex-bold.ttf" {
		t.Errorf("expected bold font path, got %+v", cfg.Fonts)
	}

	m, err := cfg.ToModel()
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	if m.AspectRatio != model.AspectA3 {
		t.Errorf("expected a3, got %s", m.AspectRatio)
	}
	if m.TextAlign != ports.AlignCenter {
		t.Errorf("expected center, got %v", m.TextAlign)
	}
	if m.OverlayColor == nil || m.OverlayAlpha != 0.3 {
		t.Errorf("expected overlay at 0.3, got %v %v", m.OverlayColor, m.OverlayAlpha)
	}
	if m.BackgroundPosition == nil || m.BackgroundPosition.Y != 200 {
		t.Errorf("expected position, got %v", m.BackgroundPosition)
	}
	if !m.ShowCredit || m.CreditText != "Photo by Jane" {
		t.Error("expected credit enabled")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("width: [1, 2")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestToModel_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown aspect", func(c *Config) { c.AspectRatio = "square" }},
		{"bad background color", func(c *Config) { c.BackgroundColor = "#zzz" }},
		{"bad font color", func(c *Config) { c.FontColor = "#12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			if _, err := cfg.ToModel(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToModel_EmptyAspect(t *testing.T) {
	cfg := Defaults()
	cfg.AspectRatio = ""

	m, err := cfg.ToModel()
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	if m.AspectRatio != model.AspectDefault {
		t.Errorf("expected default aspect, got %s", m.AspectRatio)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.Color
		wantErr  bool
	}{
		{"", nil, false},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}, false},
		{"1a2b3c", color.NRGBA{0x1a, 0x2b, 0x3c, 255}, false},
		{"#F0a", color.NRGBA{0xff, 0x00, 0xaa, 255}, false},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}, false},
		{"#12", nil, true},
		{"#gggggg", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meme.yaml")
	if err := os.WriteFile(path, []byte("headline_text: From File\n"), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.HeadlineText != "From File" {
		t.Errorf("expected headline from file, got %q", cfg.HeadlineText)
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want string
	}{
		{"nil", nil, ""},
		{"opaque", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, "#112233"},
		{"translucent", color.NRGBA{R: 0xff, A: 0x80}, "#ff000080"},
		{"white", color.White, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatColor(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFromModel_RoundTrip(t *testing.T) {
	m := model.Defaults()
	m.AspectRatio = model.AspectA3
	m.OverlayColor = color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	m.TextAlign = ports.AlignRight
	m.BackgroundPosition = &model.Point{X: 5, Y: 6}
	m.ShowCredit = true

	settings := FromModel(m)
	if settings.DebugDir != "" || settings.Background != "" {
		t.Error("expected asset and debug fields to stay empty")
	}

	got, err := settings.ToModel()
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	if got.AspectRatio != model.AspectA3 || got.TextAlign != ports.AlignRight || !got.ShowCredit {
		t.Errorf("unexpected round trip %s %v %v", got.AspectRatio, got.TextAlign, got.ShowCredit)
	}
	if FormatColor(got.OverlayColor) != "#0a141e" {
		t.Errorf("unexpected overlay %v", got.OverlayColor)
	}
	if got.BackgroundPosition == nil || *got.BackgroundPosition != *m.BackgroundPosition {
		t.Errorf("unexpected position %v", got.BackgroundPosition)
	}

	settings.BackgroundPosition.X = 99
	if m.BackgroundPosition.X != 5 {
		t.Error("expected settings not to alias the model position")
	}
}
