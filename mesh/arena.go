// SPDX-License-Identifier: MIT

package mesh

import (
	"github.com/katalvlaran/trimesh/geom"
)

// PointID is a stable handle into an Arena.
type PointID int

// NoPoint is the zero-value sentinel for "no vertex".
const NoPoint PointID = -1

// Arena owns every point referenced by a mesh. Entries are never removed or
// mutated, so a PointID handed out once stays valid.
type Arena struct {
	pts []geom.Point
}

// NewArena returns an empty arena with room for capacity points.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}

	return &Arena{pts: make([]geom.Point, 0, capacity)}
}

// Add stores p and returns its fresh handle. Equal coordinates always get
// a new handle.
// Complexity: amortized O(1).
func (a *Arena) Add(p geom.Point) PointID {
	a.pts = append(a.pts, p)

	return PointID(len(a.pts) - 1)
}

// At returns the coordinates behind id. It panics on an unknown id, the
// same way a slice index would: handles only come from Add.
func (a *Arena) At(id PointID) geom.Point { return a.pts[id] }

// Lookup is the checked variant of At.
func (a *Arena) Lookup(id PointID) (geom.Point, error) {
	if !a.Has(id) {
		return geom.Point{}, ErrUnknownPoint
	}

	return a.pts[id], nil
}

// Has reports whether id was issued by this arena.
func (a *Arena) Has(id PointID) bool { return id >= 0 && int(id) < len(a.pts) }

// Len returns the number of points in the arena.
func (a *Arena) Len() int { return len(a.pts) }
