// Package orchestrator runs the render pipeline whenever the configuration changes.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/pipeline"
	"github.com/user/memecanvas/pkg/ports"
)

// Orchestrator resolves geometry, draws every layer in order onto a single
// reusable surface and republishes the exported PNG.
type Orchestrator struct {
	geometryStage pipeline.Stage[model.Config, pipeline.Geometry]
	renderer      ports.Renderer
	layers        []pipeline.Layer
	store         *model.Store
	fonts         ports.FontSource
	sink          ports.DebugSink
	logger        ports.Logger

	// mu serializes render passes.
	mu      sync.Mutex
	surface ports.Surface
	export  *pipeline.Export
	cursor  pipeline.Cursor
	renders int

	subMu       sync.Mutex
	unsubscribe func()
}

// New creates a new Orchestrator. layers are drawn in the given order.
func New(
	geometryStage pipeline.Stage[model.Config, pipeline.Geometry],
	renderer ports.Renderer,
	layers []pipeline.Layer,
	store *model.Store,
	fonts ports.FontSource,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		geometryStage: geometryStage,
		renderer:      renderer,
		layers:        layers,
		store:         store,
		fonts:         fonts,
		sink:          sink,
		logger:        logger.WithComponent("orchestrator"),
		cursor:        pipeline.CursorDefault,
	}
}

// Render runs one full pass over the current configuration and assets.
// A layer never fails a pass; only a missing surface or an encoding error does.
func (o *Orchestrator) Render(ctx context.Context) (pipeline.Export, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	cfg := o.store.Config()
	assets := o.store.Assets()

	geo, err := o.geometryStage.Execute(ctx, cfg)
	if err != nil {
		return pipeline.Export{}, fmt.Errorf("geometry stage: %w", err)
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(geo, "", "  "); err == nil {
			o.sink.SaveGeometryJSON(data)
		}
	}

	surface, err := o.prepare(geo)
	if err != nil {
		o.logger.Warn("Rendering skipped: %s", err)
		o.publishPlaceholder(cfg)
		return pipeline.Export{}, err
	}

	f := pipeline.NewFrame(cfg, assets, geo)
	for i, layer := range o.layers {
		f = layer.Draw(f, surface)
		if o.sink.Enabled() {
			if err := o.sink.SaveLayer(i, layer.Name(), surface.Image()); err != nil {
				o.logger.Warn("Failed to save debug layer %s: %s", layer.Name(), err)
			}
		}
	}

	img := surface.Image()
	data, err := o.renderer.EncodeImage(img, ports.FormatPNG)
	if err != nil {
		o.logger.Error("Failed to encode image: %s", err)
		return pipeline.Export{}, fmt.Errorf("encode export: %w", err)
	}

	if o.sink.Enabled() {
		o.sink.SaveFrame(img)
	}

	export := pipeline.Export{
		Data:     data,
		Filename: pipeline.ExportFilename(cfg.DownloadName),
		Hint:     pipeline.DownloadHint,
		Width:    geo.Width,
		Height:   geo.Height,
	}
	o.export = &export
	o.cursor = cursorFor(assets)
	o.renders++

	o.logger.Debug("Rendered %dx%d frame with %d layers (%d bytes)", geo.Width, geo.Height, len(o.layers), len(data))
	return export, nil
}

// placeholder stands in for the artifact when no surface can be obtained.
var placeholder = image.NewNRGBA(image.Rect(0, 0, 1, 1))

// publishPlaceholder replaces the artifact with the static placeholder.
// Callers hold o.mu.
func (o *Orchestrator) publishPlaceholder(cfg model.Config) {
	o.cursor = pipeline.CursorDefault
	data, err := o.renderer.EncodeImage(placeholder, ports.FormatPNG)
	if err != nil {
		o.logger.Error("Failed to encode image: %s", err)
		o.export = nil
		return
	}
	o.export = &pipeline.Export{
		Data:        data,
		Filename:    pipeline.ExportFilename(cfg.DownloadName),
		Hint:        pipeline.DownloadHint,
		Width:       1,
		Height:      1,
		Placeholder: true,
	}
}

// prepare returns the surface sized and cleared for geo. The surface is
// created on first use and resized afterwards. Callers hold o.mu.
func (o *Orchestrator) prepare(geo pipeline.Geometry) (ports.Surface, error) {
	if geo.Width <= 0 || geo.Height <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", geo.Width, geo.Height, pipeline.ErrUnsupportedSurface)
	}

	if o.surface == nil {
		s, err := o.renderer.CreateSurface(geo.Width, geo.Height)
		if err != nil {
			return nil, err
		}
		o.surface = s
	} else {
		o.surface.Resize(geo.Width, geo.Height)
	}

	o.surface.Clear()
	o.surface.SetGlobalAlpha(1)
	return o.surface, nil
}

func cursorFor(assets model.Assets) pipeline.Cursor {
	if assets.HasBackground() {
		return pipeline.CursorMove
	}
	return pipeline.CursorDefault
}

// Start subscribes to configuration changes and renders once. When the fonts
// are not ready yet it renders again as soon as they are, unless ctx ends first.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.subMu.Lock()
	if o.unsubscribe == nil {
		o.unsubscribe = o.store.Subscribe(func() { o.handleChange(ctx) })
	}
	o.subMu.Unlock()

	o.logger.Info("Starting renderer")
	_, err := o.Render(ctx)
	if err != nil && !errors.Is(err, pipeline.ErrUnsupportedSurface) {
		o.Stop()
		return err
	}

	select {
	case <-o.fonts.Ready():
		return nil
	default:
	}

	go func() {
		select {
		case <-o.fonts.Ready():
			o.logger.Info("Fonts ready, re-rendering")
			o.handleChange(ctx)
		case <-ctx.Done():
		}
	}()
	return nil
}

// Stop unsubscribes from configuration changes.
func (o *Orchestrator) Stop() {
	o.subMu.Lock()
	defer o.subMu.Unlock()
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}

// RenderWhenReady waits for the fonts and then renders once.
func (o *Orchestrator) RenderWhenReady(ctx context.Context) (pipeline.Export, error) {
	select {
	case <-o.fonts.Ready():
	case <-ctx.Done():
		return pipeline.Export{}, ctx.Err()
	}
	return o.Render(ctx)
}

func (o *Orchestrator) handleChange(ctx context.Context) {
	if _, err := o.Render(ctx); err != nil && !errors.Is(err, pipeline.ErrUnsupportedSurface) {
		o.logger.Error("Render failed: %s", err)
	}
}

// Artifact returns the export of the last successful render.
func (o *Orchestrator) Artifact() (pipeline.Export, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.export == nil {
		return pipeline.Export{}, false
	}
	return *o.export, true
}

// Cursor returns the pointer affordance for the render surface.
func (o *Orchestrator) Cursor() pipeline.Cursor {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cursor
}

// Renders returns the number of completed render passes.
func (o *Orchestrator) Renders() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.renders
}
