// SPDX-License-Identifier: MIT

// Package cli wires the trimesh cobra commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trimesh/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	debug   bool
	logJSON bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "trimesh",
		Short:         "trimesh builds Delaunay triangulations from point sets",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging (per-insertion events, source locations)")
	cmd.PersistentFlags().BoolVar(&g.logJSON, "log-json", false, "emit logs as JSON instead of text")

	cmd.AddCommand(triangulateCmd(g), mstCmd(g), validateCmd(g), versionCmd())
	return cmd
}

// startLogger installs the process logger on the command's stderr.
func startLogger(cmd *cobra.Command, g *globalFlags) func() {
	return logger.Setup(logger.Config{
		Out:   cmd.ErrOrStderr(),
		Debug: g.debug,
		JSON:  g.logJSON,
	})
}
