// SPDX-License-Identifier: MIT

package mesh

import "slices"

// Mesh is an unordered collection of triangles with O(1) insert and
// remove-by-identity.
//
// Storage is a dense slice plus an ID → slot index; Remove moves the last
// triangle into the freed slot. Iteration order is therefore not sorted,
// but it is fully determined by the sequence of Insert/Remove calls.
type Mesh struct {
	tris   []Triangle
	slot   map[TriangleID]int
	nextID TriangleID
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{slot: make(map[TriangleID]int)}
}

// Insert stores t under a fresh ID and returns that ID. Any ID already set
// on t is overwritten.
// Complexity: amortized O(1).
func (m *Mesh) Insert(t Triangle) TriangleID {
	m.nextID++
	t.ID = m.nextID
	m.slot[t.ID] = len(m.tris)
	m.tris = append(m.tris, t)

	return t.ID
}

// Remove deletes the triangle with the given ID.
// Returns ErrTriangleNotFound if it is not present.
// Complexity: O(1).
func (m *Mesh) Remove(id TriangleID) error {
	i, ok := m.slot[id]
	if !ok {
		return ErrTriangleNotFound
	}
	last := len(m.tris) - 1
	if i != last {
		m.tris[i] = m.tris[last]
		m.slot[m.tris[i].ID] = i
	}
	m.tris = m.tris[:last]
	delete(m.slot, id)

	return nil
}

// Len returns the number of triangles.
func (m *Mesh) Len() int { return len(m.tris) }

// Each calls fn for every triangle until fn returns false. The mesh must
// not be modified from inside fn.
func (m *Mesh) Each(fn func(Triangle) bool) {
	for _, t := range m.tris {
		if !fn(t) {
			return
		}
	}
}

// Triangles returns a snapshot copy of the current triangles.
func (m *Mesh) Triangles() []Triangle { return slices.Clone(m.tris) }
