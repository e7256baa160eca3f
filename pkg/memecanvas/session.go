package memecanvas

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"sort"

	"github.com/user/memecanvas/pkg/adapters/filesink"
	"github.com/user/memecanvas/pkg/adapters/fontbook"
	"github.com/user/memecanvas/pkg/adapters/ggsurface"
	"github.com/user/memecanvas/pkg/adapters/nullsink"
	"github.com/user/memecanvas/pkg/adapters/pointerbus"
	"github.com/user/memecanvas/pkg/config"
	"github.com/user/memecanvas/pkg/drag"
	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/orchestrator"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
	"github.com/user/memecanvas/pkg/stages/compose"
	"github.com/user/memecanvas/pkg/stages/geometry"
	"github.com/user/memecanvas/pkg/stages/text"
)

// Options configures a Session. FileSystem and Logger are required.
type Options struct {
	FileSystem ports.FileSystem
	Logger     ports.Logger

	// Sink receives debug output. When nil, DebugDir selects a file sink
	// and an empty DebugDir discards debug output.
	Sink     ports.DebugSink
	DebugDir string

	// Fonts are registered in the background when the session starts.
	Fonts []fontbook.Source
}

// Session wires the configuration store, the render orchestrator and the
// drag controller around a gg surface.
type Session struct {
	Store        *model.Store
	Orchestrator *orchestrator.Orchestrator
	Drag         *drag.Controller

	fonts    *fontbook.Book
	pointer  *pointerbus.Bus
	renderer *ggsurface.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
	sources  []fontbook.Source
}

// NewSession creates a session for cfg. Nothing is rendered until Start.
func NewSession(cfg model.Config, opts Options) (*Session, error) {
	fonts, err := fontbook.New(opts.FileSystem, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("font book: %w", err)
	}

	store := model.NewStore(cfg)
	renderer := ggsurface.New(fonts, opts.Logger)

	sink := opts.Sink
	switch {
	case sink != nil:
	case opts.DebugDir != "":
		if err := opts.FileSystem.MkdirAll(opts.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(opts.DebugDir, opts.FileSystem, renderer)
		opts.Logger.Info("Debug output enabled: %s", opts.DebugDir)
	default:
		sink = nullsink.New()
	}
	pointer := pointerbus.New()

	layers := append(compose.Layers(opts.Logger), text.Layers(opts.Logger)...)

	return &Session{
		Store: store,
		Orchestrator: orchestrator.New(
			geometry.NewStage(),
			renderer,
			layers,
			store,
			fonts,
			sink,
			opts.Logger,
		),
		Drag:     drag.NewController(store, pointer, opts.Logger),
		fonts:    fonts,
		pointer:  pointer,
		renderer: renderer,
		fs:       opts.FileSystem,
		logger:   opts.Logger,
		sources:  opts.Fonts,
	}, nil
}

// NewSessionFromSettings creates a session from a settings file and loads the
// background and watermark it names. Relative asset and font paths resolve
// against baseDir.
func NewSessionFromSettings(settings config.Config, baseDir string, opts Options) (*Session, error) {
	cfg, err := settings.ToModel()
	if err != nil {
		return nil, err
	}

	opts.Fonts = append(opts.Fonts, FontSources(settings.Fonts, baseDir)...)
	s, err := NewSession(NewConfigBuilderFrom(cfg).Build(), opts)
	if err != nil {
		return nil, err
	}

	if settings.Background != "" {
		if err := s.LoadBackground(resolve(baseDir, settings.Background)); err != nil {
			return nil, err
		}
	}
	if settings.Watermark != "" {
		if err := s.LoadWatermark(resolve(baseDir, settings.Watermark)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FontSources flattens a family map into font sources in a stable order.
func FontSources(files map[string]config.FontFiles, baseDir string) []fontbook.Source {
	families := make([]string, 0, len(files))
	for family := range files {
		families = append(families, family)
	}
	sort.Strings(families)

	var sources []fontbook.Source
	for _, family := range families {
		f := files[family]
		if f.Regular != "" {
			sources = append(sources, fontbook.Source{Family: family, Weight: ports.WeightNormal, Path: resolve(baseDir, f.Regular)})
		}
		if f.Bold != "" {
			sources = append(sources, fontbook.Source{Family: family, Weight: ports.WeightBold, Path: resolve(baseDir, f.Bold)})
		}
	}
	return sources
}

func resolve(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Start loads fonts in the background and starts rendering on every change.
func (s *Session) Start(ctx context.Context) error {
	s.fonts.LoadAsync(ctx, s.sources)
	return s.Orchestrator.Start(ctx)
}

// Close stops rendering and ends any drag in progress.
func (s *Session) Close() {
	s.Drag.Cancel()
	s.Orchestrator.Stop()
}

// LoadBackground decodes an image file and makes it the background.
func (s *Session) LoadBackground(path string) error {
	img, err := s.decode(path)
	if err != nil {
		return fmt.Errorf("load background: %w", err)
	}
	s.Store.SetBackground(img)
	return nil
}

// LoadWatermark decodes an image file and makes it the watermark.
func (s *Session) LoadWatermark(path string) error {
	img, err := s.decode(path)
	if err != nil {
		return fmt.Errorf("load watermark: %w", err)
	}
	s.Store.SetWatermark(img)
	return nil
}

func (s *Session) decode(path string) (image.Image, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.renderer.DecodeImage(data, ports.FormatAuto)
}

// PointerDown forwards a press on the render surface to the drag controller.
// It reports whether a drag started; without a background nothing happens.
func (s *Session) PointerDown(x, y float64) bool {
	return s.Drag.PointerDown(ports.PointerEvent{X: x, Y: y})
}

// PointerMove forwards a document-scope pointer move.
func (s *Session) PointerMove(x, y float64) {
	s.pointer.Move(ports.PointerEvent{X: x, Y: y})
}

// PointerUp forwards a document-scope pointer release.
func (s *Session) PointerUp(x, y float64) {
	s.pointer.Up(ports.PointerEvent{X: x, Y: y})
}

// Export waits for the fonts and returns a fresh render.
func (s *Session) Export(ctx context.Context) (pipeline.Export, error) {
	return s.Orchestrator.RenderWhenReady(ctx)
}

// SaveExport renders and writes the export into dir. It returns the written path.
func (s *Session) SaveExport(ctx context.Context, dir string) (string, error) {
	export, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	exists, err := s.fs.Exists(dir)
	if err != nil {
		return "", fmt.Errorf("check output directory: %w", err)
	}
	if !exists {
		if err := s.fs.MkdirAll(dir); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		s.logger.Debug("Created output directory %s", dir)
	}

	path := filepath.Join(dir, export.Filename)
	if err := s.fs.WriteFile(path, export.Data); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	s.logger.Info("Export saved to %s", path)
	return path, nil
}
