// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trimesh/config"
	"github.com/katalvlaran/trimesh/delaunay"
	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/internal/logger"
	"github.com/katalvlaran/trimesh/tinio"
)

var errNoInput = errors.New("no input: set --input or input in the config file")

type triangulateFlags struct {
	configPath  string
	input       string
	inputFormat string
	output      string
	format      string
	frameScale  float64
	strict      bool
	validate    bool
}

func triangulateCmd(g *globalFlags) *cobra.Command {
	f := &triangulateFlags{}

	c := &cobra.Command{
		Use:   "triangulate",
		Short: "Triangulate a point file and write the mesh as GeoJSON or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer startLogger(cmd, g)()

			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			return runTriangulate(cmd.OutOrStdout(), cfg)
		},
	}

	bindMeshFlags(c, f)
	c.Flags().StringVar(&f.format, "format", "auto", "output format: auto|geojson|json")
	c.Flags().BoolVar(&f.validate, "validate", false, "check the result before writing it (empty-circle check is O(T·n), slow on large meshes)")

	return c
}

// bindMeshFlags registers the flags shared by every command that builds a mesh.
func bindMeshFlags(c *cobra.Command, f *triangulateFlags) {
	c.Flags().StringVar(&f.configPath, "config", "", "YAML config file (flags override its values)")
	c.Flags().StringVarP(&f.input, "input", "i", "", "point file (.txt/.csv/.xyz text or .geojson)")
	c.Flags().StringVar(&f.inputFormat, "input-format", "auto", "input format: auto|text|geojson")
	c.Flags().StringVarP(&f.output, "output", "o", "", "output file (stdout when empty)")
	c.Flags().Float64Var(&f.frameScale, "frame-scale", delaunay.DefaultFrameScale, "bounding frame size as a multiple of the data extent")
	c.Flags().BoolVar(&f.strict, "strict", false, "reject points outside the configured bounds")
}

// resolveConfig layers explicitly set flags over the config file (or the
// defaults when no file is given).
func resolveConfig(cmd *cobra.Command, f *triangulateFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.Input = f.input
	}
	if fl.Changed("input-format") {
		cfg.InputFormat = f.inputFormat
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}
	if fl.Changed("format") {
		cfg.OutputFormat = f.format
	}
	if fl.Changed("frame-scale") {
		cfg.FrameScale = f.frameScale
	}
	if fl.Changed("strict") {
		cfg.StrictBounds = f.strict
	}
	if fl.Changed("validate") {
		cfg.Validate = f.validate
	}

	if err := cfg.Check(); err != nil {
		return config.Config{}, err
	}
	if cfg.Input == "" {
		return config.Config{}, errNoInput
	}

	return cfg, nil
}

func runTriangulate(stdout io.Writer, cfg config.Config) error {
	start := time.Now()

	pts, res, err := buildMesh(cfg)
	if err != nil {
		return err
	}

	outFmt, _ := tinio.ParseFormat(cfg.OutputFormat)
	if cfg.Output == "" {
		err = tinio.Write(stdout, outFmt, res)
	} else {
		err = tinio.WriteFile(cfg.Output, outFmt, res)
	}
	if err != nil {
		return err
	}

	logger.L().Info("triangulate.done",
		"points", len(pts),
		"vertices", len(res.Vertices),
		"triangles", res.Len(),
		"area", res.TotalArea(),
		"output", cfg.Output,
		"elapsed", time.Since(start),
	)

	return nil
}

// buildMesh reads cfg.Input, triangulates and, if asked, validates.
func buildMesh(cfg config.Config) ([]geom.Point, *delaunay.Result, error) {
	log := logger.L()

	inFmt, _ := tinio.ParseFormat(cfg.InputFormat)
	pts, err := tinio.ReadFile(cfg.Input, inFmt)
	if err != nil {
		return nil, nil, err
	}
	log.Info("triangulate.read", "input", cfg.Input, "points", len(pts))

	res, err := triangulate(pts, cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Validate {
		if err := res.Validate(delaunay.DefaultValidateEps); err != nil {
			return nil, nil, fmt.Errorf("validate: %w", err)
		}
		log.Info("triangulate.validated", "triangles", res.Len())
	}

	return pts, res, nil
}

// triangulate builds the mesh over the configured bounds, or over the
// bounding box of pts when none are configured. Exact repeats are skipped;
// survey files routinely carry them.
func triangulate(pts []geom.Point, cfg config.Config) (*delaunay.Result, error) {
	bounds := geom.R(0, 0, 0, 0)
	if cfg.Bounds != nil {
		bounds = cfg.Bounds.Rect()
	} else if b, err := geom.Bounds(pts); err == nil {
		bounds = b
	}

	opts := append(cfg.Options(),
		delaunay.WithDedup(),
		delaunay.WithCapacity(len(pts)),
		delaunay.WithLogger(logger.L()),
	)
	tr, err := delaunay.NewWithBounds(bounds, opts...)
	if err != nil {
		return nil, err
	}
	if err = tr.AddPoints(pts); err != nil {
		return nil, err
	}
	if n := tr.Duplicates(); n > 0 {
		logger.L().Warn("triangulate.duplicates_skipped", "count", n)
	}

	return tr.Finish()
}
