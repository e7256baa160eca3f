package compose

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/user/memecanvas/pkg/mocks"
	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/stages/geometry"
)

func frame(cfg model.Config, assets model.Assets) pipeline.Frame {
	return pipeline.NewFrame(cfg, assets, geometry.Resolve(cfg))
}

func rgba(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		max  float64
		expW float64
		expH float64
	}{
		{"scales down", 2000, 1000, 758.08, 758.08, 379.04},
		{"never scales up", 400, 300, 758.08, 400, 300},
		{"exact fit", 500, 250, 500, 500, 250},
		{"tall image", 1000, 3000, 250, 250, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitWidth(tt.w, tt.h, tt.max)
			if !near(w, tt.expW) || !near(h, tt.expH) {
				t.Errorf("FitWidth(%d, %d, %v) = (%v, %v), expected (%v, %v)", tt.w, tt.h, tt.max, w, h, tt.expW, tt.expH)
			}
			if w > float64(tt.w) || h > float64(tt.h) {
				t.Errorf("upscaled to (%v, %v)", w, h)
			}
		})
	}
}

func TestBackground_Placement(t *testing.T) {
	cfg := model.Defaults()
	f := frame(cfg, model.Assets{Background: rgba(2000, 1000)})

	r, ok := (&Background{}).Placement(f)
	if !ok {
		t.Fatal("expected placement")
	}

	// mw = 824 - 824*0.08 = 758.08
	if !near(r.W, 758.08) || !near(r.H, 379.04) {
		t.Errorf("expected 758.08x379.04, got %vx%v", r.W, r.H)
	}
	if !near(r.X, (824-758.08)/2) {
		t.Errorf("expected centered x, got %v", r.X)
	}
	if !near(r.Y, (1060-379.04)/2-40) {
		t.Errorf("expected centered y lifted by 40, got %v", r.Y)
	}
}

func TestBackground_PlacementSmallImage(t *testing.T) {
	f := frame(model.Defaults(), model.Assets{Background: rgba(300, 200)})

	r, _ := (&Background{}).Placement(f)
	if r.W != 300 || r.H != 200 {
		t.Errorf("expected native size, got %vx%v", r.W, r.H)
	}
	if r.X != 262 || r.Y != 390 {
		t.Errorf("expected (262, 390), got (%v, %v)", r.X, r.Y)
	}
}

func TestBackground_PlacementIgnoresPositionByDefault(t *testing.T) {
	cfg := model.Defaults()
	cfg.BackgroundPosition = &model.Point{X: 0, Y: 0}
	f := frame(cfg, model.Assets{Background: rgba(300, 200)})

	r, _ := (&Background{}).Placement(f)
	if r.X != 262 {
		t.Errorf("expected canonical centering, got x=%v", r.X)
	}
}

func TestBackground_PlacementFollowsDrag(t *testing.T) {
	cfg := model.Defaults()
	cfg.BackgroundFollowsDrag = true
	cfg.ImageScale = 0.5
	cfg.BackgroundPosition = &model.Point{X: 500, Y: 600}
	f := frame(cfg, model.Assets{Background: rgba(2000, 1000)})

	r, _ := (&Background{}).Placement(f)
	if r.W != 1000 || r.H != 500 {
		t.Errorf("expected scaled size 1000x500, got %vx%v", r.W, r.H)
	}
	if r.X != 0 || r.Y != 350 {
		t.Errorf("expected centered on position, got (%v, %v)", r.X, r.Y)
	}
}

func TestBackground_Draw(t *testing.T) {
	cfg := model.Defaults()
	cfg.ImageOpacity = 0.6
	bg := rgba(2000, 1000)
	s := mocks.NewSurface()

	(&Background{logger: mocks.NewLogger()}).Draw(frame(cfg, model.Assets{Background: bg}), s)

	calls := s.CallsOf("drawImage")
	if len(calls) != 1 {
		t.Fatalf("expected one image, got %d", len(calls))
	}
	if calls[0].Alpha != 0.6 {
		t.Errorf("expected alpha 0.6, got %v", calls[0].Alpha)
	}
	if calls[0].Image != bg {
		t.Error("expected the background image")
	}
	if s.GlobalAlpha() != 1 {
		t.Errorf("expected alpha reset to 1, got %v", s.GlobalAlpha())
	}
}

func TestBackground_DrawMissing(t *testing.T) {
	s := mocks.NewSurface()
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil", nil},
		{"zero width", rgba(0, 10)},
		{"zero height", rgba(10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			(&Background{logger: mocks.NewLogger()}).Draw(frame(model.Defaults(), model.Assets{Background: tt.img}), s)
			if len(s.Calls) != 0 {
				t.Errorf("expected nothing drawn, got %v", s.Calls)
			}
		})
	}
}

func TestOverlay_Draw(t *testing.T) {
	cfg := model.Defaults()
	s := mocks.NewSurface()

	(&Overlay{}).Draw(frame(cfg, model.Assets{}), s)
	if len(s.Calls) != 0 {
		t.Error("expected no overlay without a color")
	}

	cfg.OverlayColor = color.Black
	cfg.OverlayAlpha = 0.25
	(&Overlay{}).Draw(frame(cfg, model.Assets{}), s)

	fills := s.CallsOf("fillRect")
	if len(fills) != 1 {
		t.Fatalf("expected one fill, got %d", len(fills))
	}
	c := fills[0]
	if c.Alpha != 0.25 || c.W != 824 || c.H != 1060 || c.X != 0 || c.Y != 0 {
		t.Errorf("expected full-canvas fill at 0.25, got %+v", c)
	}
	if s.GlobalAlpha() != 1 {
		t.Errorf("expected alpha reset to 1, got %v", s.GlobalAlpha())
	}
}

func TestSolidFill_Draw(t *testing.T) {
	cfg := model.Defaults()
	cfg.BackgroundColor = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	s := mocks.NewSurface()
	s.SetGlobalAlpha(0.2)

	(&SolidFill{}).Draw(frame(cfg, model.Assets{}), s)

	fills := s.CallsOf("fillRect")
	if len(fills) != 1 || fills[0].Alpha != 1 {
		t.Errorf("expected one opaque fill, got %+v", fills)
	}
	if fills[0].Color != cfg.BackgroundColor {
		t.Error("expected the background color")
	}
}

func TestLayers_Order(t *testing.T) {
	layers := Layers(mocks.NewLogger())
	expected := []string{"background", "overlay", "background-color", "watermark"}

	if len(layers) != len(expected) {
		t.Fatalf("expected %d layers, got %d", len(expected), len(layers))
	}
	for i, name := range expected {
		if layers[i].Name() != name {
			t.Errorf("layer %d: expected %s, got %s", i, name, layers[i].Name())
		}
	}
}

func TestSolidFillCoversBackground(t *testing.T) {
	cfg := model.Defaults()
	cfg.BackgroundColor = color.White
	s := mocks.NewSurface()

	f := frame(cfg, model.Assets{Background: rgba(100, 100)})
	for _, l := range Layers(mocks.NewLogger()) {
		f = l.Draw(f, s)
	}

	var ops []string
	for _, c := range s.Calls {
		ops = append(ops, c.Op)
	}
	if len(ops) != 2 || ops[0] != "drawImage" || ops[1] != "fillRect" {
		t.Errorf("expected photo then solid fill, got %v", ops)
	}
}

func TestWatermark_Placement(t *testing.T) {
	cfg := model.Defaults()
	f := frame(cfg, model.Assets{Watermark: rgba(412, 100)})

	r, ok := (&Watermark{}).Placement(f)
	if !ok {
		t.Fatal("expected placement")
	}

	// mw = 824 * 0.25 = 206; padding = 66
	if r.W != 206 || r.H != 50 {
		t.Errorf("expected 206x50, got %vx%v", r.W, r.H)
	}
	if r.X != 44 {
		t.Errorf("expected x = 66 - 22, got %v", r.X)
	}
	if r.Y != 1060-33-50+10 {
		t.Errorf("expected y = 987, got %v", r.Y)
	}
}

func TestWatermark_DrawRecordsWidth(t *testing.T) {
	cfg := model.Defaults()
	cfg.WatermarkAlpha = 0.5
	s := mocks.NewSurface()

	f := (&Watermark{logger: mocks.NewLogger()}).Draw(frame(cfg, model.Assets{Watermark: rgba(100, 40)}), s)

	if f.WatermarkWidth != 100 {
		t.Errorf("expected recorded width 100, got %v", f.WatermarkWidth)
	}
	calls := s.CallsOf("drawImage")
	if len(calls) != 1 || calls[0].Alpha != 0.5 {
		t.Errorf("expected one image at alpha 0.5, got %+v", calls)
	}
	if s.GlobalAlpha() != 1 {
		t.Errorf("expected alpha reset to 1, got %v", s.GlobalAlpha())
	}
}

func TestWatermark_DrawMissing(t *testing.T) {
	s := mocks.NewSurface()

	f := (&Watermark{logger: mocks.NewLogger()}).Draw(frame(model.Defaults(), model.Assets{}), s)
	if f.WatermarkWidth != 0 {
		t.Errorf("expected zero width, got %v", f.WatermarkWidth)
	}

	f = (&Watermark{logger: mocks.NewLogger()}).Draw(frame(model.Defaults(), model.Assets{Watermark: rgba(120, 0)}), s)
	if f.WatermarkWidth != 120 {
		t.Errorf("expected native width for an unloaded image, got %v", f.WatermarkWidth)
	}
	if len(s.Calls) != 0 {
		t.Error("expected nothing drawn")
	}
}
