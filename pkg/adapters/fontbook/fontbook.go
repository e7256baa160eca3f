// Package fontbook provides a font source that maps CSS-style family names to
// TrueType fonts, falling back to the embedded Go fonts.
package fontbook

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/memecanvas/pkg/ports"
)

// DPI converts point sizes the way a browser canvas does (1pt = 96/72 px).
const DPI = 96

// Source is a font file registered under a family name.
type Source struct {
	Family string
	Weight ports.FontWeight
	Path   string
}

type fontKey struct {
	family string
	weight ports.FontWeight
}

type faceKey struct {
	fontKey
	size float64
}

// Book implements ports.FontSource.
type Book struct {
	fs     ports.FileSystem
	logger ports.Logger

	mu       sync.RWMutex
	fonts    map[fontKey]*truetype.Font
	faces    map[faceKey]font.Face
	fallback map[fontKey]*truetype.Font

	ready     chan struct{}
	readyOnce sync.Once
}

// New creates a Book with the embedded Go fonts as fallbacks.
func New(fs ports.FileSystem, logger ports.Logger) (*Book, error) {
	b := &Book{
		fs:       fs,
		logger:   logger.WithComponent("fontbook"),
		fonts:    make(map[fontKey]*truetype.Font),
		faces:    make(map[faceKey]font.Face),
		fallback: make(map[fontKey]*truetype.Font),
		ready:    make(chan struct{}),
	}

	embedded := []struct {
		key  fontKey
		data []byte
	}{
		{fontKey{"sans", ports.WeightNormal}, goregular.TTF},
		{fontKey{"sans", ports.WeightBold}, gobold.TTF},
		{fontKey{"mono", ports.WeightNormal}, gomono.TTF},
		{fontKey{"mono", ports.WeightBold}, gomonobold.TTF},
	}
	for _, e := range embedded {
		f, err := truetype.Parse(e.data)
		if err != nil {
			return nil, fmt.Errorf("parse embedded font %s: %w", e.key.family, err)
		}
		b.fallback[e.key] = f
	}

	return b, nil
}

// Register parses TrueType data and registers it for family and weight.
func (b *Book) Register(family string, weight ports.FontWeight, data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", family, err)
	}

	key := fontKey{normalize(family), weight}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fonts[key] = f
	for k := range b.faces {
		if k.fontKey == key {
			delete(b.faces, k)
		}
	}
	return nil
}

// Load reads and registers every source, then marks the book ready.
// A source that fails to load is logged and skipped; its family keeps
// resolving to the fallback font.
func (b *Book) Load(ctx context.Context, sources []Source) {
	defer b.MarkReady()

	for _, src := range sources {
		if ctx.Err() != nil {
			b.logger.Warn("Font loading interrupted: %s", ctx.Err())
			return
		}
		data, err := b.fs.ReadFile(src.Path)
		if err != nil {
			b.logger.Warn("Failed to read font %s: %s", src.Path, err)
			continue
		}
		if err := b.Register(src.Family, src.Weight, data); err != nil {
			b.logger.Warn("Failed to register font %s: %s", src.Family, err)
			continue
		}
		b.logger.Debug("Registered font %s (%s) from %s", src.Family, src.Weight, src.Path)
	}
}

// LoadAsync runs Load in a goroutine. Ready is closed when it finishes.
func (b *Book) LoadAsync(ctx context.Context, sources []Source) {
	go b.Load(ctx, sources)
}

// MarkReady closes the ready channel. It is safe to call more than once.
func (b *Book) MarkReady() {
	b.readyOnce.Do(func() { close(b.ready) })
}

// Ready implements ports.FontSource.
func (b *Book) Ready() <-chan struct{} {
	return b.ready
}

// Face implements ports.FontSource.
func (b *Book) Face(req ports.Font) (font.Face, error) {
	if req.Size <= 0 {
		return nil, fmt.Errorf("font %s: invalid size %v", req.Family, req.Size)
	}

	key := faceKey{fontKey{normalize(req.Family), req.Weight}, req.Size}

	b.mu.RLock()
	face, ok := b.faces[key]
	b.mu.RUnlock()
	if ok {
		return face, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if face, ok := b.faces[key]; ok {
		return face, nil
	}

	f := b.lookup(key.fontKey)
	face = truetype.NewFace(f, &truetype.Options{
		Size:    req.Size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	b.faces[key] = face
	return face, nil
}

// lookup finds the registered font for key, trying the normal weight of the
// same family before the embedded fallback. Callers hold b.mu.
func (b *Book) lookup(key fontKey) *truetype.Font {
	if f, ok := b.fonts[key]; ok {
		return f
	}
	if f, ok := b.fonts[fontKey{key.family, ports.WeightNormal}]; ok {
		return f
	}

	class := "sans"
	if strings.Contains(key.family, "mono") {
		class = "mono"
	}
	return b.fallback[fontKey{class, key.weight}]
}

// normalize lowercases a family and strips CSS quotes.
func normalize(family string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(family), `"'`))
}

// Ensure Book implements ports.FontSource
var _ ports.FontSource = (*Book)(nil)
