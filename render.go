package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/logging"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func renderFlags() []cli.Flag {
	defaults := config.Default()
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "TOML or YAML file with render settings",
		},
		cli.StringFlag{
			Name:  "scene, s",
			Value: defaults.Scene,
			Usage: "built-in scene to render (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "width",
			Value: defaults.Width,
			Usage: "image width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: defaults.Height,
			Usage: "image height",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "image filename (.png, .jpg or .bmp)",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Value: defaults.MaxDepth,
			Usage: "reflection and refraction rays allowed per camera ray",
		},
		cli.StringFlag{
			Name:  "tone-map",
			Value: defaults.ToneMap,
			Usage: "normalize (divide by the brightest channel) or clamp",
		},
		cli.Float64Flag{
			Name:  "ambient",
			Usage: "ambient light intensity, overriding the scene's own",
		},
		cli.StringFlag{
			Name:  "image",
			Usage: "image file for textured backdrops",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: defaults.LogLevel,
			Usage: "debug, info, warn or error",
		},
		cli.BoolFlag{
			Name:  "watch, w",
			Usage: "re-render whenever the config file changes",
		},
	}
}

// loadConfig layers the config file and then explicit flags over the defaults
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if ctx.IsSet("scene") {
		cfg.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("out") {
		cfg.Output = ctx.String("out")
	}
	if ctx.IsSet("max-depth") {
		cfg.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("tone-map") {
		cfg.ToneMap = ctx.String("tone-map")
	}
	if ctx.IsSet("ambient") {
		ambient := ctx.Float64("ambient")
		cfg.Ambient = &ambient
	}
	if ctx.IsSet("image") {
		cfg.Image = ctx.String("image")
	}
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}

	return cfg, cfg.Validate()
}

func renderCommand(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !ctx.Bool("watch") {
		_, err := renderOnce(runCtx, cfg, logger)
		return err
	}

	path := ctx.String("config")
	if path == "" {
		return errors.New("--watch needs a --config file to watch")
	}

	rerender := func() error {
		next, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		_, err = renderOnce(runCtx, next, logger)
		return err
	}

	if _, err := renderOnce(runCtx, cfg, logger); err != nil {
		logger.Errorf("render failed: %v", err)
	}
	return watchConfig(runCtx, path, logger, rerender)
}

// renderOnce builds the configured scene, traces it and saves the image.
// It returns the path written.
func renderOnce(ctx context.Context, cfg config.Config, logger *log.Logger) (string, error) {
	s, err := scene.Create(cfg.Scene, scene.Options{ImagePath: cfg.Image, Logger: logger})
	if err != nil {
		return "", err
	}
	s.MaxReflectionDepth = cfg.MaxDepth
	if cfg.Ambient != nil {
		s.AmbientIntensity = *cfg.Ambient
	}

	// Match the screen to the image shape
	s.Camera.SetAspect(float64(cfg.Width) / float64(cfg.Height))
	s.Camera.UpdateCameraGeometry()

	frame := renderer.NewFrame(cfg.Width, cfg.Height)
	r := renderer.NewRenderer(s, renderer.Options{Name: cfg.Scene}, logger)
	stats, err := r.Render(ctx, frame)
	if err != nil {
		return "", err
	}

	toneMap, err := renderer.ParseToneMap(cfg.ToneMap)
	if err != nil {
		return "", err
	}

	out := cfg.Output
	if out == "" {
		if out, err = createOutputPath(cfg.Scene, time.Now()); err != nil {
			return "", err
		}
	}
	if err := frame.Save(out, toneMap); err != nil {
		return "", err
	}

	logger.Infof("frame statistics\n%s", formatStats(stats, out))
	return out, nil
}

// createOutputPath returns output/<scene>/render_<timestamp>.png, creating
// the directory
func createOutputPath(sceneName string, now time.Time) (string, error) {
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))), nil
}

func formatStats(stats renderer.Stats, out string) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Render", "Scene", "Size", "Hits", "Pixels/s", "Render time"})
	table.Append([]string{
		stats.ID,
		stats.Scene,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d (%02.1f %%)", stats.Hits, stats.Coverage()*100),
		fmt.Sprintf("%.0f", stats.PixelsPerSecond()),
		stats.Elapsed.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{"", "", "", "", "OUTPUT", out})
	table.Render()
	return buf.String()
}

func listScenes(ctx *cli.Context) error {
	for _, name := range scene.Names() {
		fmt.Fprintln(ctx.App.Writer, name)
	}
	return nil
}
