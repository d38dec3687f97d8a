// SPDX-License-Identifier: MIT

// Package tinio moves points into a triangulation and results out of it.
//
// Readers:
//
//	ReadText     — one "x y" (or "x,y", "x;y") per line, '#' comments, an
//	               optional third column (z) is accepted and ignored
//	ReadGeoJSON  — FeatureCollection / Feature / bare geometry of Point or
//	               MultiPoint, decoded with github.com/paulmach/orb/geojson
//	ReadFile     — dispatch on Format, or on the file extension for FormatAuto
//
// Writers:
//
//	ToFeatureCollection / WriteGeoJSON — one Polygon feature per triangle
//	WriteJSON / ReadResultJSON         — {"vertices": [...], "triangles": [...]}
//	WriteFile                          — dispatch on Format
//
// Every failure is an *OpError carrying the operation, a coarse Kind and,
// when known, the path and line.
package tinio
