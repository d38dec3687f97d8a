// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trimesh/delaunay"
	"github.com/katalvlaran/trimesh/internal/logger"
	"github.com/katalvlaran/trimesh/tinio"
)

func validateCmd(g *globalFlags) *cobra.Command {
	var eps float64

	c := &cobra.Command{
		Use:   "validate <mesh.json>",
		Short: "Check a JSON mesh for index range, orientation, empty circles and overlap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer startLogger(cmd, g)()

			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return &tinio.OpError{Op: "cli.validate", Kind: tinio.KindNotFound, Path: path, Err: err}
			}
			defer f.Close()

			res, err := tinio.ReadResultJSON(f)
			if err != nil {
				return err
			}
			if err := res.Validate(eps); err != nil {
				logger.L().Warn("validate.failed", "path", path, "err", err)
				return err
			}

			logger.L().Info("validate.ok", "path", path, "triangles", res.Len())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d vertices, %d triangles\n", len(res.Vertices), res.Len())
			return err
		},
	}

	c.Flags().Float64Var(&eps, "eps", delaunay.DefaultValidateEps, "relative tolerance for the empty-circle and overlap checks")
	return c
}
