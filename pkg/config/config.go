package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Errors returned by Load and Validate
var (
	ErrInvalid           = errors.New("config: invalid configuration")
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Config holds every render setting that can come from a file or flags
type Config struct {
	Scene    string   `toml:"scene" yaml:"scene"`         // Built-in scene name
	Width    int      `toml:"width" yaml:"width"`         // Image width in pixels
	Height   int      `toml:"height" yaml:"height"`       // Image height in pixels
	Output   string   `toml:"output" yaml:"output"`       // Output image (.png, .jpg, .bmp); empty picks a timestamped path
	MaxDepth int      `toml:"max_depth" yaml:"max_depth"` // Secondary rays per camera ray
	ToneMap  string   `toml:"tone_map" yaml:"tone_map"`   // "normalize" or "clamp"
	LogLevel string   `toml:"log_level" yaml:"log_level"` // debug, info, warn, error
	Ambient  *float64 `toml:"ambient" yaml:"ambient"`     // Ambient intensity; nil keeps the scene's own
	Image    string   `toml:"image" yaml:"image"`         // Image for textured backdrops
}

// Default returns the settings used when nothing else is given
func Default() Config {
	return Config{
		Scene:    "spheres",
		Width:    1280,
		Height:   720,
		MaxDepth: 3,
		ToneMap:  string(renderer.ToneMapNormalize),
		LogLevel: "info",
	}
}

// Load reads a TOML or YAML file over the defaults. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges. Scene names are checked when the scene is
// built.
func (c Config) Validate() error {
	var problems []string

	if c.Scene == "" {
		problems = append(problems, "scene is empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("image size %dx%d must be positive", c.Width, c.Height))
	}
	if c.MaxDepth < 0 {
		problems = append(problems, fmt.Sprintf("max_depth %d is negative", c.MaxDepth))
	}
	if _, err := renderer.ParseToneMap(c.ToneMap); err != nil {
		problems = append(problems, fmt.Sprintf("tone_map %q is not normalize or clamp", c.ToneMap))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("log_level %q is unknown", c.LogLevel))
	}
	if c.Ambient != nil && *c.Ambient < 0 {
		problems = append(problems, fmt.Sprintf("ambient %g is negative", *c.Ambient))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
