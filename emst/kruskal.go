// SPDX-License-Identifier: MIT

package emst

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/trimesh/delaunay"
)

// Kruskal builds the tree by scanning triangulation edges in ascending
// length and keeping each edge that joins two components.
//
// Ties keep the Result.Edges order (stable sort), so the output is
// deterministic for a given Result.
//
// Steps:
//  1. Reject a nil Result; zero or one vertex gives an empty tree.
//  2. Collect every triangulation edge with its Euclidean length.
//  3. Sort the edges by length, stable.
//  4. Scan in order, keeping an edge when union-find reports that it
//     joins two components; stop at n-1 edges.
//  5. Fewer than n-1 edges means some vertex is in no triangle
//     (ErrDisconnected).
//
// Complexity:
//
//	Time:   O(E log E) for the sort, E = O(n) on a triangulation.
//	Memory: O(n + E).
//
// Errors: ErrNilResult, ErrDisconnected.
func Kruskal(res *delaunay.Result) (Tree, error) {
	if res == nil {
		return Tree{}, ErrNilResult
	}
	n := len(res.Vertices)
	if n <= 1 {
		return Tree{Edges: [][2]int{}}, nil
	}

	// planar graph: E <= 3n-6, so sorting every edge is cheap
	edges := edgeLengths(res)
	slices.SortStableFunc(edges, func(x, y weighted) int { return cmp.Compare(x.w, y.w) })

	uf := newUnionFind(n)
	tree := Tree{Edges: make([][2]int, 0, n-1)}
	for _, e := range edges {
		if !uf.union(e.a, e.b) {
			continue // same component
		}
		tree.Edges = append(tree.Edges, [2]int{e.a, e.b})
		tree.Length += e.w
		if len(tree.Edges) == n-1 {
			break // spanning
		}
	}
	if len(tree.Edges) < n-1 {
		return Tree{}, ErrDisconnected
	}

	return tree, nil
}

// unionFind is a disjoint-set forest over 0..n-1.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find walks to the root, halving the path as it goes.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]] // skip to grandparent
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank; false if already merged.
func (uf *unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	// attach the shallower tree under the deeper one
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}

	return true
}
