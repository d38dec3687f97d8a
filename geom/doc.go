// SPDX-License-Identifier: MIT

// Package geom holds the planar primitives and predicates used by the
// triangulation packages of github.com/katalvlaran/trimesh.
//
// 🚀 What lives here?
//
//	• Point / Rect     — plain float64 values, no identity
//	• Orient           — doubled signed area of (a, b, c); > 0 means CCW
//	• InCircumcircle   — the "lifting to the paraboloid" in-circle test
//	• Circumcircle     — explicit centre and radius (diagnostics only)
//	• ConvexHull       — Andrew's monotone chain, CCW, collinear points dropped
//	• PolygonArea      — shoelace formula
//
// ✨ Contract:
//
//   - Values are compared by coordinates here and nowhere else. Topology
//     (which vertex is "the same" vertex) is decided by mesh.PointID handles.
//   - InCircumcircle assumes a, b, c are counter-clockwise and never checks.
//     Callers (mesh.NewTriangle) normalize orientation up front.
//   - Plain IEEE-754 arithmetic. Near-collinear or co-circular inputs are
//     decided by rounding noise; there is no exact fallback.
//
// ⚙️ Usage:
//
//	a, b, c := geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(0, 4)
//	geom.Orient(a, b, c) > 0                      // true: CCW
//	geom.InCircumcircle(a, b, c, geom.Pt(1, 1))   // true
//
// Complexity: every predicate is O(1); ConvexHull is O(n log n).
package geom
