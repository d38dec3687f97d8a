// SPDX-License-Identifier: MIT

package delaunay

import (
	"fmt"

	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/mesh"
)

// cavity is the read-only plan for one insertion: the triangles to drop
// and the boundary polygon to re-fan around the new point.
type cavity struct {
	bad      []mesh.Triangle
	boundary []mesh.Edge
}

// findCavity scans every triangle in m and returns those whose
// circumcircle strictly contains p.
// Complexity: O(T).
func findCavity(m *mesh.Mesh, arena *mesh.Arena, p geom.Point) []mesh.Triangle {
	var bad []mesh.Triangle
	m.Each(func(t mesh.Triangle) bool {
		if t.CircumcircleContains(arena, p) {
			bad = append(bad, t)
		}
		return true
	})

	return bad
}

// cavityBoundary returns the edges of bad that no other bad triangle shares.
//
// Steps:
//  1. For each cavity triangle t and each of its three edges e:
//     a. Count the edges of the other cavity triangles equal to e,
//     compared as unordered pairs of handles.
//     b. No partner: e separates the cavity from a kept triangle and
//     goes on the boundary, in t's CCW order.
//     c. One partner: e is interior to the cavity and is dropped.
//     d. More than one partner: impossible in a valid mesh, so the plan
//     fails with ErrOpenBoundary.
//
// Complexity:
//
//	Time:   O(k²) for k cavity triangles; k is small on average.
//	Memory: O(k) for the boundary.
func cavityBoundary(bad []mesh.Triangle) ([]mesh.Edge, error) {
	var boundary []mesh.Edge
	for i, t := range bad {
		for _, e := range t.Edges() {
			shared := 0
			for j, other := range bad {
				if i == j {
					continue // an edge never matches its own triangle
				}
				for _, oe := range other.Edges() {
					if e.Equal(oe) {
						shared++
					}
				}
			}
			switch {
			case shared == 0:
				boundary = append(boundary, e)
			case shared > 1:
				return nil, fmt.Errorf("edge %v shared by %d cavity triangles: %w", e, shared+1, ErrOpenBoundary)
			}
		}
	}

	return boundary, nil
}

// checkClosed verifies that boundary forms exactly one simple cycle: every
// vertex has degree two and a walk from any edge visits all of them.
//
// Steps:
//  1. Reject fewer than three edges: no polygon can be fanned.
//  2. Build vertex adjacency and require degree two everywhere.
//  3. Walk the cycle from boundary[0]; the walk must return to its start
//     after exactly len(boundary) steps, otherwise the cavity had holes
//     or several components.
func checkClosed(boundary []mesh.Edge) error {
	if len(boundary) < 3 {
		return fmt.Errorf("%d boundary edges: %w", len(boundary), ErrOpenBoundary)
	}
	adj := make(map[mesh.PointID][]mesh.PointID, len(boundary))
	for _, e := range boundary {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	for v, nb := range adj {
		if len(nb) != 2 {
			return fmt.Errorf("vertex %d has boundary degree %d: %w", v, len(nb), ErrOpenBoundary)
		}
	}

	start := boundary[0].A
	prev, cur := start, boundary[0].B
	steps := 1
	for cur != start {
		// degree two: take the neighbour we did not come from
		next := adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		prev, cur = cur, next
		steps++
		if steps > len(boundary) {
			break // cannot close; reported below
		}
	}
	if steps != len(boundary) {
		return fmt.Errorf("boundary splits into several cycles: %w", ErrOpenBoundary)
	}

	return nil
}

// planInsertion computes the cavity for p without touching m.
//
// Steps:
//  1. findCavity: every triangle whose circumcircle strictly contains p.
//     None means p repeats an existing vertex (ErrEmptyCavity).
//  2. cavityBoundary: the unshared edges of the cavity.
//  3. checkClosed: the boundary must be one simple cycle, so the fan
//     around p tiles the cavity exactly.
//
// Any error leaves m untouched; the caller decides whether to poison.
func planInsertion(m *mesh.Mesh, arena *mesh.Arena, p geom.Point) (cavity, error) {
	bad := findCavity(m, arena, p)
	if len(bad) == 0 {
		return cavity{}, fmt.Errorf("point %v: %w", p, ErrEmptyCavity)
	}
	boundary, err := cavityBoundary(bad)
	if err != nil {
		return cavity{}, fmt.Errorf("point %v: %w", p, err)
	}
	if err = checkClosed(boundary); err != nil {
		return cavity{}, fmt.Errorf("point %v: %w", p, err)
	}

	return cavity{bad: bad, boundary: boundary}, nil
}

// apply removes the cavity and fans its boundary to pid in one batch.
// Removals come first so the mesh never holds overlapping triangles.
func (c cavity) apply(m *mesh.Mesh, arena *mesh.Arena, pid mesh.PointID) error {
	for _, t := range c.bad {
		if err := m.Remove(t.ID); err != nil {
			return fmt.Errorf("remove cavity triangle %d: %w", t.ID, err)
		}
	}
	// one new triangle per boundary edge; NewTriangle fixes orientation
	for _, e := range c.boundary {
		t, err := mesh.NewTriangle(arena, e.A, e.B, pid)
		if err != nil {
			return fmt.Errorf("fan edge %v: %w", e, err)
		}
		m.Insert(t)
	}

	return nil
}

// insertPoint runs one Bowyer–Watson step for the arena point pid.
//
// Steps:
//  1. Plan (read-only): cavity, boundary and closed-cycle check via
//     planInsertion.
//  2. Mutate: apply drops the cavity and fans the boundary to pid.
//
// On error the mesh is left exactly as it was before the call unless the
// failure happened inside apply, which indicates a mesh bookkeeping bug.
//
// Complexity:
//
//	Time:   O(T) for the cavity scan plus O(k²) for the boundary.
//	Memory: O(k) for the plan.
func insertPoint(m *mesh.Mesh, arena *mesh.Arena, pid mesh.PointID) (cavity, error) {
	c, err := planInsertion(m, arena, arena.At(pid))
	if err != nil {
		return cavity{}, err
	}
	if err = c.apply(m, arena, pid); err != nil {
		return cavity{}, err
	}

	return c, nil
}
