// Package config loads the neonwire YAML configuration and watches it for
// changes.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/neonwire/pkg/scene"
	"github.com/taigrr/neonwire/pkg/theme"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Limits on the tick rate.
const (
	MinFPS = 1
	MaxFPS = 240
)

// Config is the user configuration.
type Config struct {
	// Effect is the scene id to show, or "none".
	Effect string `yaml:"effect"`
	// Size overrides the scene's default scale when positive.
	Size    float64    `yaml:"size"`
	Palette string     `yaml:"palette"`
	Mode    theme.Mode `yaml:"mode"`
	FPS     int        `yaml:"fps"`
	Seed    uint64     `yaml:"seed"`
	// Model is the glTF file shown by the model effect.
	Model string `yaml:"model"`
	Log   Log    `yaml:"log"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives the logs instead of stderr. The player only logs when
	// it is set, since stderr shares the terminal it draws on.
	File string `yaml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Effect:  "cube",
		Palette: theme.DefaultPalette,
		Mode:    theme.Dark,
		FPS:     60,
		Log:     Log{Level: "info", Format: "json"},
	}
}

// Parse decodes YAML from r over the defaults and validates the result.
// An empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the file at path. A missing file is not an error:
// the defaults are returned.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside %d..%d", ErrInvalid, c.FPS, MinFPS, MaxFPS)
	}
	if c.Size < 0 {
		return fmt.Errorf("%w: negative size %v", ErrInvalid, c.Size)
	}
	if _, err := theme.Resolve(c.Mode, c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Effect != "" && c.Effect != scene.None {
		if _, err := scene.Default().Lookup(c.Effect); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Theme resolves the configured palette.
func (c Config) Theme() theme.Theme {
	t, err := theme.Resolve(c.Mode, c.Palette)
	if err != nil {
		return theme.MustResolve(theme.Dark, theme.DefaultPalette)
	}
	return t
}
