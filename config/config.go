// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration used by the trimesh CLI.
//
// Example file:
//
//	input: survey/points.txt
//	input_format: auto        # auto | text | geojson
//	output: out/mesh.geojson
//	output_format: auto       # auto | geojson | json
//	bounds:                   # optional; derived from the points when omitted
//	  min_x: 0
//	  min_y: 0
//	  max_x: 1000
//	  max_y: 1000
//	frame_scale: 20
//	strict_bounds: false
//	validate: false
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trimesh/delaunay"
	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/tinio"
)

// Sentinel errors for configuration loading.
var (
	// ErrNotFound indicates the config file could not be read.
	ErrNotFound = errors.New("config: file not found")

	// ErrInvalid indicates a malformed or semantically invalid config.
	ErrInvalid = errors.New("config: invalid config")
)

// Bounds is the YAML form of geom.Rect.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Rect converts b to a geom.Rect.
func (b Bounds) Rect() geom.Rect { return geom.R(b.MinX, b.MinY, b.MaxX, b.MaxY) }

// Config is one triangulation run.
type Config struct {
	Input        string  `yaml:"input"`
	InputFormat  string  `yaml:"input_format"`
	Output       string  `yaml:"output"`
	OutputFormat string  `yaml:"output_format"`
	Bounds       *Bounds `yaml:"bounds"`
	FrameScale   float64 `yaml:"frame_scale"`
	StrictBounds bool    `yaml:"strict_bounds"`
	Validate     bool    `yaml:"validate"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		InputFormat:  string(tinio.FormatAuto),
		OutputFormat: string(tinio.FormatAuto),
		FrameScale:   delaunay.DefaultFrameScale,
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w: %w", path, ErrNotFound, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w: %w", path, ErrInvalid, err)
	}
	if err := cfg.Check(); err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w", path, err)
	}

	return cfg, nil
}

// Check checks formats, bounds and frame scale. An empty Input is
// allowed here; the CLI may still supply it through a flag.
func (c Config) Check() error {
	switch f, err := tinio.ParseFormat(c.InputFormat); {
	case err != nil:
		return fmt.Errorf("input_format %q: %w", c.InputFormat, ErrInvalid)
	case f == tinio.FormatJSON:
		return fmt.Errorf("input_format %q is output-only: %w", c.InputFormat, ErrInvalid)
	}
	if f, err := tinio.ParseFormat(c.OutputFormat); err != nil || f == tinio.FormatText {
		return fmt.Errorf("output_format %q: %w", c.OutputFormat, ErrInvalid)
	}
	if math.IsNaN(c.FrameScale) || math.IsInf(c.FrameScale, 0) || c.FrameScale < delaunay.MinFrameScale {
		return fmt.Errorf("frame_scale %v must be >= %v: %w", c.FrameScale, delaunay.MinFrameScale, ErrInvalid)
	}
	if c.Bounds != nil {
		b := c.Bounds
		if b.MinX > b.MaxX || b.MinY > b.MaxY || !b.Rect().IsValid() {
			return fmt.Errorf("bounds %+v: %w", *b, ErrInvalid)
		}
	}

	return nil
}

// Options translates the triangulation-related fields into delaunay options.
func (c Config) Options() []delaunay.Option {
	opts := []delaunay.Option{delaunay.WithFrameScale(c.FrameScale)}
	if c.StrictBounds {
		opts = append(opts, delaunay.WithStrictBounds())
	}

	return opts
}
