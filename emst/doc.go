// SPDX-License-Identifier: MIT

// Package emst computes the Euclidean minimum spanning tree of a point set
// from its Delaunay triangulation.
//
// 🚀 Why the triangulation?
//
//	Every edge of a Euclidean MST is a Delaunay edge, so the search can run
//	over the O(n) triangulation edges instead of the O(n²) complete graph.
//
// ✨ Algorithms
//
//   - Kruskal(res)     – sort edges by length, merge components with a
//     union-find (path compression, union by rank). O(E log E).
//   - Prim(res, root)  – grow one tree from root with a min-heap of
//     candidate edges. O(E log V).
//
// Both return the same total Length. With equal-length edges the chosen
// edge set may differ between the two.
//
// Usage:
//
//	res, _ := delaunay.Triangulate(pts)
//	tree, err := emst.Kruskal(res)
//	// tree.Edges: [][2]int into res.Vertices, tree.Length: sum of edge lengths
package emst
