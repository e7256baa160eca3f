package fontbook

import (
	"context"
	"testing"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/user/memecanvas/pkg/mocks"
	"github.com/user/memecanvas/pkg/ports"
)

func newBook(t *testing.T, fs ports.FileSystem, log ports.Logger) *Book {
	t.Helper()
	b, err := New(fs, log)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

// monospaced reports whether narrow and wide glyphs share one advance.
func monospaced(face font.Face) bool {
	return font.MeasureString(face, "iiii") == font.MeasureString(face, "mmmm")
}

func TestBook_FallbackFaces(t *testing.T) {
	b := newBook(t, mocks.NewFileSystem(), mocks.NewLogger())

	tests := []struct {
		family string
		mono   bool
	}{
		{"IBM Plex Sans", false},
		{"folsom-web", false},
		{"katwijk-mono-web", true},
		{"'Roboto Mono'", true},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			face, err := b.Face(ports.Font{Family: tt.family, Size: 16})
			if err != nil {
				t.Fatalf("Face failed: %v", err)
			}
			if got := monospaced(face); got != tt.mono {
				t.Errorf("expected monospaced=%v, got %v", tt.mono, got)
			}
		})
	}
}

func TestBook_FaceInvalidSize(t *testing.T) {
	b := newBook(t, mocks.NewFileSystem(), mocks.NewLogger())

	for _, size := range []float64{0, -4} {
		if _, err := b.Face(ports.Font{Family: "sans", Size: size}); err == nil {
			t.Errorf("expected error for size %v", size)
		}
	}
}

func TestBook_FaceIsCached(t *testing.T) {
	b := newBook(t, mocks.NewFileSystem(), mocks.NewLogger())

	a, _ := b.Face(ports.Font{Family: "IBM Plex Sans", Size: 20})
	c, _ := b.Face(ports.Font{Family: `"ibm plex sans"`, Size: 20})
	if a != c {
		t.Error("expected normalized family to reuse the cached face")
	}

	d, _ := b.Face(ports.Font{Family: "IBM Plex Sans", Size: 21})
	if a == d {
		t.Error("expected a new face for a different size")
	}
}

func TestBook_FaceSizeScalesAt96DPI(t *testing.T) {
	b := newBook(t, mocks.NewFileSystem(), mocks.NewLogger())

	small, _ := b.Face(ports.Font{Family: "sans", Size: 12})
	large, _ := b.Face(ports.Font{Family: "sans", Size: 24})

	ws := font.MeasureString(small, "Save The Date").Round()
	wl := font.MeasureString(large, "Save The Date").Round()
	if wl < 2*ws-4 || wl > 2*ws+4 {
		t.Errorf("expected width to double with size, got %d and %d", ws, wl)
	}
}

func TestBook_LoadRegistersFonts(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("fonts/folsom.ttf", gomono.TTF)
	log := mocks.NewLogger()
	b := newBook(t, fs, log)

	b.Load(context.Background(), []Source{
		{Family: "folsom-web", Weight: ports.WeightNormal, Path: "fonts/folsom.ttf"},
	})

	select {
	case <-b.Ready():
	default:
		t.Fatal("expected book to be ready after Load")
	}

	regular, _ := b.Face(ports.Font{Family: "folsom-web", Size: 16})
	if !monospaced(regular) {
		t.Error("expected registered font to replace the fallback")
	}

	// Bold falls back to the family's normal weight before the embedded font.
	bold, _ := b.Face(ports.Font{Family: "folsom-web", Size: 16, Weight: ports.WeightBold})
	if !monospaced(bold) {
		t.Error("expected bold to resolve to the registered normal weight")
	}

	if n := len(log.Entries(ports.LevelWarn)); n != 0 {
		t.Errorf("expected no warnings, got %d", n)
	}
}

func TestBook_LoadSkipsBadSources(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("fonts/broken.ttf", []byte("not a font"))
	log := mocks.NewLogger()
	b := newBook(t, fs, log)

	b.Load(context.Background(), []Source{
		{Family: "missing", Path: "fonts/missing.ttf"},
		{Family: "broken", Path: "fonts/broken.ttf"},
	})

	if n := len(log.Entries(ports.LevelWarn)); n != 2 {
		t.Errorf("expected 2 warnings, got %d", n)
	}
	if _, err := b.Face(ports.Font{Family: "broken", Size: 10}); err != nil {
		t.Errorf("expected fallback face, got %v", err)
	}
}

func TestBook_LoadCancelled(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("a.ttf", gomono.TTF)
	log := mocks.NewLogger()
	b := newBook(t, fs, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.Load(ctx, []Source{{Family: "a", Path: "a.ttf"}})

	select {
	case <-b.Ready():
	default:
		t.Fatal("expected book to be ready after an interrupted Load")
	}
	face, _ := b.Face(ports.Font{Family: "a", Size: 10})
	if monospaced(face) {
		t.Error("expected font not to be registered")
	}
}

func TestBook_RegisterDropsCachedFaces(t *testing.T) {
	b := newBook(t, mocks.NewFileSystem(), mocks.NewLogger())

	before, _ := b.Face(ports.Font{Family: "headline", Size: 30})
	if err := b.Register("Headline", ports.WeightNormal, gomono.TTF); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	after, _ := b.Face(ports.Font{Family: "headline", Size: 30})

	if before == after {
		t.Error("expected cached face to be replaced")
	}
	if !monospaced(after) {
		t.Error("expected registered font")
	}
}

func TestBook_RegisterInvalid(t *testing.T) {
	b := newBook(t, mocks.NewFileSystem(), mocks.NewLogger())

	if err := b.Register("x", ports.WeightNormal, []byte{1, 2, 3}); err == nil {
		t.Error("expected parse error")
	}
}

func TestBook_LoadAsync(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("a.ttf", gomono.TTF)
	b := newBook(t, fs, mocks.NewLogger())

	b.LoadAsync(context.Background(), []Source{{Family: "a", Path: "a.ttf"}})

	select {
	case <-b.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for fonts")
	}
	b.MarkReady()
}
