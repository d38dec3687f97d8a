// SPDX-License-Identifier: MIT

// Package trimesh builds 2D Delaunay triangulations incrementally.
//
// 🚀 What is trimesh?
//
//	A small, dependency-light toolkit for turning planar point sets into
//	triangle meshes (TINs):
//		• geom     – points, rectangles, orientation and in-circle predicates, hulls
//		• mesh     – point arena and an ID-keyed triangle store
//		• delaunay – Bowyer–Watson insertion inside a bounding frame, extraction,
//		             edges, neighbours, areas and validation
//		• emst     – Euclidean minimum spanning tree over the triangulation
//		• tinio    – text/GeoJSON point readers, GeoJSON/JSON mesh writers
//		• config   – YAML run configuration for the CLI
//
// ✨ Guarantees
//
//   - Every output triangle is counter-clockwise.
//   - No input point lies strictly inside any output circumcircle.
//   - Frame vertices never appear in the output.
//
// Quick example:
//
//	res, err := delaunay.Triangulate([]geom.Point{
//		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10),
//	})
//	// res.Triangles: two CCW triangles over res.Vertices
//
// Command line:
//
//	go install github.com/katalvlaran/trimesh/cmd/trimesh@latest
//	trimesh triangulate -i points.txt -o mesh.geojson --validate
//	trimesh mst -i points.txt -o cable.geojson
//	trimesh validate mesh.json
package trimesh
