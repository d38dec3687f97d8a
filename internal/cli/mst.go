// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trimesh/emst"
	"github.com/katalvlaran/trimesh/internal/logger"
	"github.com/katalvlaran/trimesh/tinio"
)

func mstCmd(g *globalFlags) *cobra.Command {
	f := &triangulateFlags{}
	var (
		method string
		root   int
	)

	c := &cobra.Command{
		Use:   "mst",
		Short: "Write the Euclidean minimum spanning tree of a point file as GeoJSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			defer startLogger(cmd, g)()
			start := time.Now()

			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			_, res, err := buildMesh(cfg)
			if err != nil {
				return err
			}

			var tree emst.Tree
			switch method {
			case "kruskal":
				tree, err = emst.Kruskal(res)
			case "prim":
				tree, err = emst.Prim(res, root)
			default:
				return fmt.Errorf("unknown method %q (want kruskal|prim)", method)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Output != "" {
				file, ferr := os.Create(cfg.Output)
				if ferr != nil {
					return &tinio.OpError{Op: "cli.mst", Kind: tinio.KindWrite, Path: cfg.Output, Err: ferr}
				}
				defer func() {
					if cerr := file.Close(); cerr != nil && err == nil {
						err = &tinio.OpError{Op: "cli.mst", Kind: tinio.KindWrite, Path: cfg.Output, Err: cerr}
					}
				}()
				out = file
			}
			if err = tinio.WriteEdgesGeoJSON(out, res.Vertices, tree.Edges); err != nil {
				return err
			}

			logger.L().Info("mst.done",
				"method", method,
				"vertices", len(res.Vertices),
				"edges", len(tree.Edges),
				"length", tree.Length,
				"elapsed", time.Since(start),
			)
			return nil
		},
	}

	bindMeshFlags(c, f)
	c.Flags().StringVar(&method, "method", "kruskal", "spanning tree algorithm: kruskal|prim")
	c.Flags().IntVar(&root, "root", 0, "start vertex for prim (index into the result vertices)")

	return c
}
