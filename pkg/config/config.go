// Package config loads render settings from a YAML file. Scene content is
// constructed in code; the file carries only render parameters.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the render settings for one invocation
type Config struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	Workers         int    `yaml:"workers"` // 0 = use CPU count
	Seed            int64  `yaml:"seed"`
	Output          string `yaml:"output"`
}

// Default returns the built-in render settings
func Default() Config {
	return Config{
		Width:           1280,
		Height:          720,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         0,
		Seed:            42,
		Output:          "out.ppm",
	}
}

// Load reads a YAML settings file over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for values the renderer cannot work with
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples_per_pixel must be at least 1, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
