// SPDX-License-Identifier: MIT

// Package mesh is the topology layer under delaunay: a point arena with
// stable handles, CCW-normalized triangles, derived edges, and a flat
// triangle container.
//
// 🚀 Identity vs. value
//
//	Points live in an Arena and are referred to by PointID. Two points with
//	identical coordinates added separately get different IDs and are never
//	merged. Every topology question (is this the same vertex? the same
//	edge?) compares IDs; coordinates are only read by geom predicates.
//
// ✨ Invariants:
//
//   - Arena entries are append-only: an ID stays valid, with the same
//     coordinates, for the lifetime of the Arena.
//   - Every Triangle built by NewTriangle is counter-clockwise (Orient ≥ 0),
//     so geom.InCircumcircle can be called on its corners directly.
//   - Mesh never deduplicates and keeps no vertex index. Insert/Remove are
//     O(1); a full scan is the only way to find triangles by vertex.
//
// Mesh is not safe for concurrent use. It has a single owner.
package mesh
