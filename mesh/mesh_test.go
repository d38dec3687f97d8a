package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/mesh"
)

// MeshSuite exercises arena handles, triangle normalization and the
// container's insert/remove-by-identity contract.
type MeshSuite struct {
	suite.Suite
	arena   *mesh.Arena
	a, b, c mesh.PointID
	d       mesh.PointID
}

func (s *MeshSuite) SetupTest() {
	s.arena = mesh.NewArena(4)
	s.a = s.arena.Add(geom.Pt(0, 0))
	s.b = s.arena.Add(geom.Pt(4, 0))
	s.c = s.arena.Add(geom.Pt(0, 4))
	s.d = s.arena.Add(geom.Pt(4, 4))
}

// TestArenaIdentity verifies equal coordinates still get distinct handles.
func (s *MeshSuite) TestArenaIdentity() {
	x := s.arena.Add(geom.Pt(1, 1))
	y := s.arena.Add(geom.Pt(1, 1))

	s.NotEqual(x, y)
	s.Equal(s.arena.At(x), s.arena.At(y))
	s.Equal(6, s.arena.Len())

	_, err := s.arena.Lookup(mesh.PointID(99))
	s.ErrorIs(err, mesh.ErrUnknownPoint)
	s.False(s.arena.Has(mesh.NoPoint))
}

// TestNewTriangle_NormalizesToCCW checks that a clockwise triple is swapped.
func (s *MeshSuite) TestNewTriangle_NormalizesToCCW() {
	ccw, err := mesh.NewTriangle(s.arena, s.a, s.b, s.c)
	s.Require().NoError(err)
	s.Equal([3]mesh.PointID{s.a, s.b, s.c}, ccw.V)

	cw, err := mesh.NewTriangle(s.arena, s.a, s.c, s.b)
	s.Require().NoError(err)
	s.Equal([3]mesh.PointID{s.a, s.b, s.c}, cw.V, "CW input must be reordered")

	p, q, r := cw.Corners(s.arena)
	s.Greater(geom.Orient(p, q, r), 0.0)
}

// TestNewTriangle_Errors covers repeated and foreign handles.
func (s *MeshSuite) TestNewTriangle_Errors() {
	_, err := mesh.NewTriangle(s.arena, s.a, s.a, s.b)
	s.ErrorIs(err, mesh.ErrDuplicateVertex)

	_, err = mesh.NewTriangle(s.arena, s.a, s.b, mesh.PointID(42))
	s.ErrorIs(err, mesh.ErrUnknownPoint)
}

// TestCircumcircleContains works whatever order the corners were given in.
func (s *MeshSuite) TestCircumcircleContains() {
	for _, order := range [][3]mesh.PointID{{s.a, s.b, s.c}, {s.a, s.c, s.b}, {s.c, s.b, s.a}} {
		tri, err := mesh.NewTriangle(s.arena, order[0], order[1], order[2])
		s.Require().NoError(err)
		s.True(tri.CircumcircleContains(s.arena, geom.Pt(1, 1)), "order %v", order)
		s.False(tri.CircumcircleContains(s.arena, geom.Pt(5, 5)), "order %v", order)
	}
}

// TestInsertRemove verifies identity-based removal and slot compaction.
func (s *MeshSuite) TestInsertRemove() {
	m := mesh.New()
	t1, _ := mesh.NewTriangle(s.arena, s.a, s.b, s.c)
	t2, _ := mesh.NewTriangle(s.arena, s.b, s.d, s.c)

	id1 := m.Insert(t1)
	id2 := m.Insert(t2)
	id3 := m.Insert(t1) // same corners, new identity
	s.Equal(3, m.Len())
	s.NotEqual(id1, id3)

	s.Require().NoError(m.Remove(id1))
	s.ErrorIs(m.Remove(id1), mesh.ErrTriangleNotFound, "double remove")
	s.Equal(2, m.Len())

	var got mesh.Triangle
	for _, t := range m.Triangles() {
		s.NotEqual(id1, t.ID, "removed triangle still listed")
		if t.ID == id3 {
			got = t
		}
	}
	s.Equal(id3, got.ID)
	s.Equal(t1.V, got.V)

	ids := map[mesh.TriangleID]bool{}
	m.Each(func(t mesh.Triangle) bool {
		ids[t.ID] = true
		return true
	})
	s.Equal(map[mesh.TriangleID]bool{id2: true, id3: true}, ids)
}

// TestTrianglesSnapshot ensures the returned slice is detached from the mesh.
func (s *MeshSuite) TestTrianglesSnapshot() {
	m := mesh.New()
	t1, _ := mesh.NewTriangle(s.arena, s.a, s.b, s.c)
	id := m.Insert(t1)

	snap := m.Triangles()
	s.Require().NoError(m.Remove(id))
	s.Len(snap, 1)
	s.Equal(0, m.Len())
}

func TestMeshSuite(t *testing.T) {
	suite.Run(t, new(MeshSuite))
}

// TestEdge_KeyAndEqual checks order independence of edges.
func TestEdge_KeyAndEqual(t *testing.T) {
	e := mesh.Edge{A: 7, B: 3}
	f := mesh.Edge{A: 3, B: 7}

	assert.True(t, e.Equal(f))
	assert.Equal(t, e.Key(), f.Key())
	assert.Equal(t, mesh.Edge{A: 3, B: 7}, e.Key())
	assert.False(t, e.Equal(mesh.Edge{A: 3, B: 8}))
	assert.True(t, e.Has(7))
	assert.False(t, e.Has(8))
}

// TestTriangle_Edges checks the cyclic pairing of corners.
func TestTriangle_Edges(t *testing.T) {
	tri := mesh.Triangle{V: [3]mesh.PointID{1, 2, 3}}
	edges := tri.Edges()

	require.Len(t, edges, 3)
	assert.Equal(t, mesh.Edge{A: 1, B: 2}, edges[0])
	assert.Equal(t, mesh.Edge{A: 2, B: 3}, edges[1])
	assert.Equal(t, mesh.Edge{A: 3, B: 1}, edges[2])
	assert.True(t, tri.HasVertex(3))
	assert.False(t, tri.HasVertex(4))
}
