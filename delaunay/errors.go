// SPDX-License-Identifier: MIT

package delaunay

import "errors"

// Sentinel errors for triangulation. Match them with errors.Is.
var (
	// ErrBadBounds indicates negative, NaN or infinite bounds.
	ErrBadBounds = errors.New("delaunay: bounds must be finite and non-negative")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("delaunay: point coordinates must be finite")

	// ErrOutOfBounds indicates a point outside the declared bounds
	// (only reported under WithStrictBounds).
	ErrOutOfBounds = errors.New("delaunay: point outside declared bounds")

	// ErrFinished indicates AddPoint or Finish after Finish already ran.
	ErrFinished = errors.New("delaunay: triangulation already finished")

	// ErrEmptyCavity indicates no triangle's circumcircle contained the new
	// point, which only happens when the frame does not contain it.
	ErrEmptyCavity = errors.New("delaunay: empty cavity")

	// ErrOpenBoundary indicates the cavity boundary is not a single closed
	// polygon (an edge shared by 3+ cavity triangles, or a broken cycle).
	ErrOpenBoundary = errors.New("delaunay: cavity boundary is not a closed polygon")

	// ErrInconsistent is returned by every call after an insertion failed
	// with ErrEmptyCavity or ErrOpenBoundary.
	ErrInconsistent = errors.New("delaunay: triangulation is in an inconsistent state")

	// ErrBadIndex indicates a Result triangle with an out-of-range or
	// repeated vertex index.
	ErrBadIndex = errors.New("delaunay: bad vertex index")

	// ErrDegenerate indicates a Result triangle with zero or negative area.
	ErrDegenerate = errors.New("delaunay: degenerate or clockwise triangle")

	// ErrNotDelaunay indicates a vertex strictly inside some triangle's circumcircle.
	ErrNotDelaunay = errors.New("delaunay: empty-circle property violated")

	// ErrOverlap indicates two triangles whose interiors intersect.
	ErrOverlap = errors.New("delaunay: overlapping triangles")
)
