// Package config loads meme settings from YAML files.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config is the settings file layout. Colors are hex strings; an empty
// string disables the fill.
type Config struct {
	// Canvas
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	PaddingRatio float64 `yaml:"padding_ratio"`
	AspectRatio  string  `yaml:"aspect_ratio"`

	// Fills
	BackgroundColor string  `yaml:"background_color"`
	OverlayColor    string  `yaml:"overlay_color"`
	OverlayAlpha    float64 `yaml:"overlay_alpha"`

	// Background image
	ImageOpacity          float64      `yaml:"image_opacity"`
	ImageScale            float64      `yaml:"image_scale"`
	BackgroundPosition    *model.Point `yaml:"background_position"`
	BackgroundFollowsDrag bool         `yaml:"background_follows_drag"`

	// Watermark
	WatermarkMaxWidthRatio float64 `yaml:"watermark_max_width_ratio"`
	WatermarkAlpha         float64 `yaml:"watermark_alpha"`

	// Typography
	FontColor                string  `yaml:"font_color"`
	FontFamily               string  `yaml:"font_family"`
	FontSize                 float64 `yaml:"font_size"`
	EventInfoFontSize        float64 `yaml:"event_info_font_size"`
	EventDescriptionFontSize float64 `yaml:"event_description_font_size"`
	CreditSize               float64 `yaml:"credit_size"`
	TextAlign                string  `yaml:"text_align"`

	// Text
	HeadlineText    string `yaml:"headline_text"`
	DateTimeText    string `yaml:"date_time_text"`
	LocationText    string `yaml:"location_text"`
	LocationTwoText string `yaml:"location_two_text"`
	WebsiteURLText  string `yaml:"website_url_text"`
	CreditText      string `yaml:"credit_text"`
	ShowCredit      bool   `yaml:"show_credit"`

	// Export
	DownloadName string `yaml:"download_name"`

	// Assets
	Background string               `yaml:"background"`
	Watermark  string               `yaml:"watermark"`
	Fonts      map[string]FontFiles `yaml:"fonts"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// FontFiles are the TrueType files registered for one family.
type FontFiles struct {
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

// Defaults returns the settings equivalent of model.Defaults.
func Defaults() Config {
	cfg := FromModel(model.Defaults())
	cfg.DebugDir = "./debug"
	return cfg
}

// FromModel converts a render configuration into settings. Asset, font and
// debug fields stay empty.
func FromModel(m model.Config) Config {
	c := Config{
		Width:        m.Width,
		Height:       m.Height,
		PaddingRatio: m.PaddingRatio,
		AspectRatio:  string(m.AspectRatio),

		BackgroundColor: FormatColor(m.BackgroundColor),
		OverlayColor:    FormatColor(m.OverlayColor),
		OverlayAlpha:    m.OverlayAlpha,

		ImageOpacity:          m.ImageOpacity,
		ImageScale:            m.ImageScale,
		BackgroundFollowsDrag: m.BackgroundFollowsDrag,

		WatermarkMaxWidthRatio: m.WatermarkMaxWidthRatio,
		WatermarkAlpha:         m.WatermarkAlpha,

		FontColor:                FormatColor(m.FontColor),
		FontFamily:               m.FontFamily,
		FontSize:                 m.FontSize,
		EventInfoFontSize:        m.EventInfoFontSize,
		EventDescriptionFontSize: m.EventDescriptionFontSize,
		CreditSize:               m.CreditSize,
		TextAlign:                m.TextAlign.String(),

		HeadlineText:    m.HeadlineText,
		DateTimeText:    m.DateTimeText,
		LocationText:    m.LocationText,
		LocationTwoText: m.LocationTwoText,
		WebsiteURLText:  m.WebsiteURLText,
		CreditText:      m.CreditText,
		ShowCredit:      m.ShowCredit,

		DownloadName: m.DownloadName,
	}
	if m.BackgroundPosition != nil {
		p := *m.BackgroundPosition
		c.BackgroundPosition = &p
	}
	return c
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Keys absent from data keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse settings: %w", err)
	}
	return cfg, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional. An empty string returns nil, meaning no color.
func ParseColor(hex string) (color.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if hex == "" {
		return nil, nil
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q", hex)
	}

	var c [4]uint8
	for i := range c {
		hi, ok1 := hexValue(hex[2*i])
		lo, ok2 := hexValue(hex[2*i+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("invalid color %q", hex)
		}
		c[i] = hi<<4 | lo
	}

	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

// FormatColor returns c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
// Nil returns "".
func FormatColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToModel converts the settings into a render configuration.
func (c Config) ToModel() (model.Config, error) {
	aspect := model.AspectRatio(c.AspectRatio)
	if aspect == "" {
		aspect = model.AspectDefault
	}
	if !aspect.Valid() {
		return model.Config{}, fmt.Errorf("unknown aspect ratio %q", c.AspectRatio)
	}

	var colors [3]color.Color
	for i, hex := range []string{c.BackgroundColor, c.OverlayColor, c.FontColor} {
		parsed, err := ParseColor(hex)
		if err != nil {
			return model.Config{}, err
		}
		colors[i] = parsed
	}

	return model.Config{
		Width:        c.Width,
		Height:       c.Height,
		PaddingRatio: c.PaddingRatio,
		AspectRatio:  aspect,

		BackgroundColor: colors[0],
		OverlayColor:    colors[1],
		OverlayAlpha:    c.OverlayAlpha,

		ImageOpacity:          c.ImageOpacity,
		ImageScale:            c.ImageScale,
		BackgroundPosition:    c.BackgroundPosition,
		BackgroundFollowsDrag: c.BackgroundFollowsDrag,

		WatermarkMaxWidthRatio: c.WatermarkMaxWidthRatio,
		WatermarkAlpha:         c.WatermarkAlpha,

		FontColor:                colors[2],
		FontFamily:               c.FontFamily,
		FontSize:                 c.FontSize,
		EventInfoFontSize:        c.EventInfoFontSize,
		EventDescriptionFontSize: c.EventDescriptionFontSize,
		CreditSize:               c.CreditSize,
		TextAlign:                ports.ParseTextAlign(c.TextAlign),

		HeadlineText:    c.HeadlineText,
		DateTimeText:    c.DateTimeText,
		LocationText:    c.LocationText,
		LocationTwoText: c.LocationTwoText,
		WebsiteURLText:  c.WebsiteURLText,
		CreditText:      c.CreditText,
		ShowCredit:      c.ShowCredit,

		DownloadName: c.DownloadName,
	}.Clone(), nil
}
