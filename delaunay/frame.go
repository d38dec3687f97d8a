// SPDX-License-Identifier: MIT

package delaunay

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/mesh"
)

// Frame is the synthetic super-triangle seeded before any real point.
// Its corners live in the same arena as real points and are kept until
// removeFrame strips every triangle that touches them.
type Frame struct {
	Corners [3]mesh.PointID
}

// Has reports whether id is one of the frame corners.
func (f Frame) Has(id mesh.PointID) bool {
	return f.Corners[0] == id || f.Corners[1] == id || f.Corners[2] == id
}

// Touches reports whether t has any frame corner as a vertex.
func (f Frame) Touches(t mesh.Triangle) bool {
	return f.Has(t.V[0]) || f.Has(t.V[1]) || f.Has(t.V[2])
}

// frameCorners places the super-triangle around bounds.
//
// With d = max(width, height, 1) and (mx, my) the centre of bounds:
//
//	(mx − k·d, my − d),  (mx, my + k·d),  (mx + k·d, my − d)
//
// The bottom edge sits d/2 below the rectangle; for k ≥ 2 the slanted
// edges clear the top corners by more than d/2 as well.
func frameCorners(bounds geom.Rect, k float64) [3]geom.Point {
	d := frameSide(bounds)
	c := bounds.Center()

	return [3]geom.Point{
		{X: c.X - k*d, Y: c.Y - d},
		{X: c.X, Y: c.Y + k*d},
		{X: c.X + k*d, Y: c.Y - d},
	}
}

// makeFrame adds the frame corners to arena and returns the frame together
// with its (CCW) triangle, ready to seed an empty mesh.
func makeFrame(arena *mesh.Arena, bounds geom.Rect, k float64) (Frame, mesh.Triangle, error) {
	pts := frameCorners(bounds, k)
	var f Frame
	for i, p := range pts {
		f.Corners[i] = arena.Add(p)
	}
	t, err := mesh.NewTriangle(arena, f.Corners[0], f.Corners[1], f.Corners[2])
	if err != nil {
		return Frame{}, mesh.Triangle{}, fmt.Errorf("delaunay: frame triangle: %w", err)
	}

	return f, t, nil
}

// removeFrame deletes every triangle that has a frame corner as a vertex
// and returns how many were dropped. Doomed IDs are collected first so the
// mesh is never mutated while it is being iterated.
func removeFrame(m *mesh.Mesh, f Frame) (int, error) {
	var doomed []mesh.TriangleID
	m.Each(func(t mesh.Triangle) bool {
		if f.Touches(t) {
			doomed = append(doomed, t.ID)
		}
		return true
	})
	for _, id := range doomed {
		if err := m.Remove(id); err != nil {
			return 0, fmt.Errorf("delaunay: remove frame triangle %d: %w", id, err)
		}
	}

	return len(doomed), nil
}

// frameSide is the larger bounds side, floored at 1 so degenerate bounds
// (a single point, a line) still get a proper triangle.
func frameSide(bounds geom.Rect) float64 {
	return math.Max(math.Max(bounds.Width(), bounds.Height()), 1)
}
