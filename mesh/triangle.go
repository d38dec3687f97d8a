// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/katalvlaran/trimesh/geom"
)

// TriangleID identifies a triangle inside one Mesh. IDs are never reused.
type TriangleID int

// Edge is an unordered pair of point handles. Use Key for comparisons.
type Edge struct {
	A, B PointID
}

// Key returns the edge with endpoints in ascending order, so that
// {p,q} and {q,p} produce the same Key.
func (e Edge) Key() Edge {
	if e.A > e.B {
		return Edge{A: e.B, B: e.A}
	}

	return e
}

// Equal reports whether e and o join the same two points, in either order.
func (e Edge) Equal(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// Has reports whether p is an endpoint of e.
func (e Edge) Has(p PointID) bool { return e.A == p || e.B == p }

func (e Edge) String() string { return fmt.Sprintf("{%d,%d}", e.A, e.B) }

// Triangle is three distinct point handles in counter-clockwise order.
// ID is assigned by Mesh.Insert; a freshly built Triangle has ID 0 and is
// not yet part of any mesh.
type Triangle struct {
	ID TriangleID
	V  [3]PointID
}

// NewTriangle builds the triangle (a, b, c) and normalizes it to CCW order:
// when the signed area is negative, b and c are swapped. A zero-area
// (collinear) triple is kept as given.
//
// Returns ErrDuplicateVertex if two handles coincide and ErrUnknownPoint if
// any handle is not in arena.
// Complexity: O(1).
func NewTriangle(arena *Arena, a, b, c PointID) (Triangle, error) {
	if a == b || b == c || a == c {
		return Triangle{}, ErrDuplicateVertex
	}
	var corners [3]geom.Point
	for i, id := range [3]PointID{a, b, c} {
		p, err := arena.Lookup(id)
		if err != nil {
			return Triangle{}, err
		}
		corners[i] = p
	}
	if geom.Orient(corners[0], corners[1], corners[2]) < 0 {
		b, c = c, b
	}

	return Triangle{V: [3]PointID{a, b, c}}, nil
}

// Edges returns (V0,V1), (V1,V2), (V2,V0).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{A: t.V[0], B: t.V[1]},
		{A: t.V[1], B: t.V[2]},
		{A: t.V[2], B: t.V[0]},
	}
}

// HasVertex reports whether p is one of the corners.
func (t Triangle) HasVertex(p PointID) bool {
	return t.V[0] == p || t.V[1] == p || t.V[2] == p
}

// Corners resolves the three handles against arena.
func (t Triangle) Corners(arena *Arena) (a, b, c geom.Point) {
	return arena.At(t.V[0]), arena.At(t.V[1]), arena.At(t.V[2])
}

// CircumcircleContains reports whether p lies strictly inside the
// circumcircle of t. Relies on the CCW normalization done by NewTriangle.
func (t Triangle) CircumcircleContains(arena *Arena, p geom.Point) bool {
	a, b, c := t.Corners(arena)

	return geom.InCircumcircle(a, b, c, p)
}

func (t Triangle) String() string {
	return fmt.Sprintf("T%d(%d,%d,%d)", t.ID, t.V[0], t.V[1], t.V[2])
}
