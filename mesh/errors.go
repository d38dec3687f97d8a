// SPDX-License-Identifier: MIT

package mesh

import "errors"

// Sentinel errors for mesh operations.
var (
	// ErrTriangleNotFound indicates Remove was called with an ID that is not
	// (or no longer) in the mesh.
	ErrTriangleNotFound = errors.New("mesh: triangle not found")

	// ErrUnknownPoint indicates a PointID outside the arena.
	ErrUnknownPoint = errors.New("mesh: unknown point id")

	// ErrDuplicateVertex indicates a triangle was requested with a repeated vertex.
	ErrDuplicateVertex = errors.New("mesh: triangle vertices must be distinct")
)
