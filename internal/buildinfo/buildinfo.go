// SPDX-License-Identifier: MIT

// Package buildinfo carries version metadata stamped at link time:
//
//	go build -ldflags "-X github.com/katalvlaran/trimesh/internal/buildinfo.Version=v0.3.0 \
//	  -X github.com/katalvlaran/trimesh/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the one-line version banner.
func String() string {
	return fmt.Sprintf("trimesh %s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
