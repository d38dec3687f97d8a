// SPDX-License-Identifier: MIT

// Command trimesh builds Delaunay triangulations from point files.
package main

import "github.com/katalvlaran/trimesh/internal/cli"

func main() {
	cli.Execute()
}
