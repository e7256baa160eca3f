// Package main provides the CLI entry point for memecanvas.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/memecanvas/pkg/adapters/logger"
	"github.com/user/memecanvas/pkg/adapters/osfilesystem"
	"github.com/user/memecanvas/pkg/config"
	"github.com/user/memecanvas/pkg/memecanvas"
	"github.com/user/memecanvas/pkg/model"
	"github.com/user/memecanvas/pkg/ports"
	"github.com/user/memecanvas/pkg/stages/geometry"
)

var version = "dev"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "memecanvas",
		Usage:   l10n.T("Render promotional event images"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Value:    "info",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  l10n.T("Render an image from a settings file"),
				Flags:  renderFlags(),
				Action: renderAction,
			},
			{
				Name:  "drag",
				Usage: l10n.T("Replay a background drag and render the result"),
				Flags: append(renderFlags(),
					&cli.StringFlag{
						Name:     "from",
						Required: true,
						Usage:    l10n.T("Pointer press position as x,y"),
						Category: l10n.T("Drag"),
					},
					&cli.StringSliceFlag{
						Name:     "via",
						Usage:    l10n.T("Intermediate pointer positions as x,y"),
						Category: l10n.T("Drag"),
					},
					&cli.StringFlag{
						Name:     "to",
						Required: true,
						Usage:    l10n.T("Pointer release position as x,y"),
						Category: l10n.T("Drag"),
					},
				),
				Action: dragAction,
			},
			{
				Name:  "presets",
				Usage: l10n.T("List the canvas presets"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   l10n.T("Settings file (YAML)"),
					},
				},
				Action: presetsAction,
			},
		},
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("Settings file (YAML)"),
			Category: l10n.T("Input"),
		},
		&cli.StringFlag{
			Name:     "out-dir",
			Aliases:  []string{"o"},
			Value:    ".",
			Usage:    l10n.T("Directory the exported PNG is written to"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "headline",
			Usage:    l10n.T("Headline text"),
			Category: l10n.T("Content"),
		},
		&cli.StringFlag{
			Name:     "aspect",
			Aliases:  []string{"a"},
			Usage:    l10n.T("Canvas preset (default, us-letter, us-tabloid, a4, a3)"),
			Category: l10n.T("Content"),
		},
		&cli.StringFlag{
			Name:     "background",
			Aliases:  []string{"b"},
			Usage:    l10n.T("Background image file"),
			Category: l10n.T("Content"),
		},
		&cli.StringFlag{
			Name:     "watermark",
			Aliases:  []string{"w"},
			Usage:    l10n.T("Watermark image file"),
			Category: l10n.T("Content"),
		},
		&cli.StringFlag{
			Name:     "download-name",
			Usage:    l10n.T("Export file name without extension"),
			Category: l10n.T("Output"),
		},
		&cli.BoolFlag{
			Name:     "debug",
			Aliases:  []string{"d"},
			Usage:    l10n.T("Save geometry and every layer for inspection"),
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:     "debug-dir",
			Usage:    l10n.T("Directory for debug output"),
			Category: l10n.T("Debug"),
		},
	}
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}

// loadSettings reads the settings file, if any, and applies flag overrides.
// It returns the settings and the directory relative asset paths resolve
// against.
func loadSettings(c *cli.Context) (config.Config, string, error) {
	settings := config.Defaults()
	baseDir := ""

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return config.Config{}, "", err
		}
		settings = loaded
		baseDir = filepath.Dir(path)
	}

	// Flag paths are relative to the working directory, not the settings file.
	if v := c.String("background"); v != "" {
		settings.Background = absPath(v)
	}
	if v := c.String("watermark"); v != "" {
		settings.Watermark = absPath(v)
	}
	if c.IsSet("headline") {
		settings.HeadlineText = c.String("headline")
	}
	if v := c.String("aspect"); v != "" {
		settings.AspectRatio = v
	}
	if v := c.String("download-name"); v != "" {
		settings.DownloadName = v
	}
	if c.Bool("debug") {
		settings.Debug = true
	}
	if v := c.String("debug-dir"); v != "" {
		settings.DebugDir = v
	}

	return settings, baseDir, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func newSession(c *cli.Context, log ports.Logger) (*memecanvas.Session, error) {
	settings, baseDir, err := loadSettings(c)
	if err != nil {
		return nil, err
	}

	opts := memecanvas.Options{
		FileSystem: osfilesystem.New(),
		Logger:     log,
	}
	if settings.Debug {
		opts.DebugDir = settings.DebugDir
	}
	return memecanvas.NewSessionFromSettings(settings, baseDir, opts)
}

func renderAction(c *cli.Context) error {
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	session, err := newSession(c, log)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Start(ctx); err != nil {
		return err
	}
	_, err = session.SaveExport(ctx, c.String("out-dir"))
	return err
}

func dragAction(c *cli.Context) error {
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	from, err := parsePoint(c.String("from"))
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parsePoint(c.String("to"))
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	var via []model.Point
	for _, v := range c.StringSlice("via") {
		p, err := parsePoint(v)
		if err != nil {
			return fmt.Errorf("--via: %w", err)
		}
		via = append(via, p)
	}

	session, err := newSession(c, log)
	if err != nil {
		return err
	}
	defer session.Close()

	if session.PointerDown(from.X, from.Y) {
		for _, p := range via {
			session.PointerMove(p.X, p.Y)
		}
		session.PointerUp(to.X, to.Y)
	} else {
		log.Warn("No background image to drag")
	}

	if p := session.Store.Config().BackgroundPosition; p != nil {
		fmt.Println(l10n.F("Background position: %.1f,%.1f", p.X, p.Y))
	}

	if err := session.Start(ctx); err != nil {
		return err
	}
	_, err = session.SaveExport(ctx, c.String("out-dir"))
	return err
}

// presetsAction prints every preset resolved against the base settings.
func presetsAction(c *cli.Context) error {
	settings := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return err
		}
		settings = loaded
	}
	base, err := settings.ToModel()
	if err != nil {
		return err
	}

	for _, a := range model.AspectRatios {
		cfg := base.Clone()
		cfg.AspectRatio = a
		geo := geometry.Resolve(cfg)
		fmt.Printf("%-12s %5dx%-5d %s %.0f/%.0f/%.0f\n",
			a, geo.Width, geo.Height, l10n.T("font"),
			geo.FontSize, geo.EventInfoFontSize, geo.EventDescriptionFontSize)
	}
	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (model.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return model.Point{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return model.Point{X: x, Y: y}, nil
}
