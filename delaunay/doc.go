// SPDX-License-Identifier: MIT

// Package delaunay builds 2D Delaunay triangulations by incremental
// Bowyer–Watson insertion.
//
// 🚀 How it works
//
//  1. New seeds the mesh with one oversized "frame" triangle that strictly
//     contains the declared bounds.
//  2. AddPoint inserts one point at a time:
//     • cavity   — every triangle whose circumcircle strictly contains p
//     • boundary — cavity edges not shared with another cavity triangle
//     • re-fan   — drop the cavity, connect each boundary edge to p
//  3. Finish strips every triangle touching a frame corner and extracts a
//     compact (vertices, index triples) Result.
//
// ✨ Guarantees
//
//   - Every stored triangle is CCW, so the in-circle determinant sign is
//     always meaningful.
//   - Vertex identity is by handle (mesh.PointID), never by coordinates:
//     duplicate coordinates stay distinct vertices.
//   - Each insertion reads first (cavity + boundary), then mutates in one
//     batch. A topology inconsistency (empty cavity, open boundary) aborts
//     the step before any mutation and poisons the Triangulation: every
//     later call returns ErrInconsistent.
//
// ⚙️ Usage
//
//	tr, err := delaunay.New(20, 20)
//	if err != nil { ... }
//	for _, p := range pts {
//	    if _, err := tr.AddPoint(p.X, p.Y); err != nil { ... }
//	}
//	res, err := tr.Finish()
//	// res.Vertices, res.Triangles
//
// or, when the bounds should come from the points themselves:
//
//	res, err := delaunay.Triangulate(pts)
//
// Performance
//
//	Both the cavity search and the boundary search are brute-force scans:
//	O(T) per insertion over the whole mesh plus O(k²) over the k cavity
//	triangles. Total cost is O(n²) for n points, and the full-mesh scan is
//	the dominant term. There is no point-location walk or spatial index.
//
// Limits
//
//   - Plain float64 predicates; co-circular ties resolve to "outside".
//   - The frame must contain every point. Points outside the declared
//     bounds are undefined behaviour unless WithStrictBounds rejects them.
//   - Coincident points are not deduplicated; callers should dedupe input.
//   - Not safe for concurrent use: a Triangulation has a single owner.
package delaunay
