// SPDX-License-Identifier: MIT

package emst

import (
	"errors"
	"math"

	"github.com/katalvlaran/trimesh/delaunay"
)

var (
	// ErrNilResult indicates a nil *delaunay.Result.
	ErrNilResult = errors.New("emst: nil result")

	// ErrDisconnected indicates that some vertex is not reachable through
	// the triangle edges, so no spanning tree exists.
	ErrDisconnected = errors.New("emst: vertices are disconnected")

	// ErrBadRoot indicates a Prim root outside [0, len(Vertices)).
	ErrBadRoot = errors.New("emst: root vertex out of range")
)

// Tree is a spanning tree over Result.Vertices.
type Tree struct {
	// Edges holds vertex index pairs with Edges[i][0] < Edges[i][1].
	Edges  [][2]int
	// Length is the sum of Euclidean edge lengths.
	Length float64
}

// weighted is a triangulation edge with its length.
type weighted struct {
	a, b int
	w    float64
}

func edgeLengths(res *delaunay.Result) []weighted {
	edges := res.Edges()
	out := make([]weighted, len(edges))
	for i, e := range edges {
		out[i] = weighted{a: e[0], b: e[1], w: length(res, e[0], e[1])}
	}

	return out
}

func length(res *delaunay.Result, a, b int) float64 {
	return math.Sqrt(res.Vertices[a].Dist2(res.Vertices[b]))
}
