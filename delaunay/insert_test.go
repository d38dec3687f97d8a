package delaunay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/delaunay"
	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/mesh"
)

// TestFrameCorners_ContainBounds checks that every bounds corner lies
// strictly inside the frame for the supported scales.
func TestFrameCorners_ContainBounds(t *testing.T) {
	rects := []geom.Rect{
		geom.R(0, 0, 20, 20),
		geom.R(0, 0, 1000, 1),
		geom.R(-50, 10, -49, 500),
		geom.R(3, 3, 3, 3), // single point
	}
	for _, k := range []float64{delaunay.MinFrameScale, 5, delaunay.DefaultFrameScale} {
		for _, r := range rects {
			f := delaunay.FrameCorners(r, k)
			// normalize to CCW
			if geom.Orient(f[0], f[1], f[2]) < 0 {
				f[1], f[2] = f[2], f[1]
			}
			for _, p := range []geom.Point{r.Min, r.Max, geom.Pt(r.Min.X, r.Max.Y), geom.Pt(r.Max.X, r.Min.Y)} {
				for e := 0; e < 3; e++ {
					assert.Greater(t, geom.Orient(f[e], f[(e+1)%3], p), 0.0,
						"k=%v rect=%v corner=%v edge=%d", k, r, p, e)
				}
			}
		}
	}
}

// square returns an arena with the unit-ish square a,b,c,d (CCW) plus the
// two triangles splitting it along a–c.
func square(t *testing.T) (*mesh.Arena, []mesh.Triangle, [4]mesh.PointID) {
	t.Helper()
	arena := mesh.NewArena(4)
	var ids [4]mesh.PointID
	for i, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)} {
		ids[i] = arena.Add(p)
	}
	t1, err := mesh.NewTriangle(arena, ids[0], ids[1], ids[2])
	require.NoError(t, err)
	t2, err := mesh.NewTriangle(arena, ids[0], ids[2], ids[3])
	require.NoError(t, err)
	t1.ID, t2.ID = 1, 2

	return arena, []mesh.Triangle{t1, t2}, ids
}

// TestCavityBoundary_SharedEdgeDropped verifies the shared diagonal is not
// part of the boundary and the remaining four edges close a cycle.
func TestCavityBoundary_SharedEdgeDropped(t *testing.T) {
	_, bad, ids := square(t)

	boundary, err := delaunay.CavityBoundary(bad)
	require.NoError(t, err)
	require.Len(t, boundary, 4)
	diag := mesh.Edge{A: ids[0], B: ids[2]}
	for _, e := range boundary {
		assert.False(t, e.Equal(diag), "diagonal must be interior")
	}
	assert.NoError(t, delaunay.CheckClosed(boundary))
}

// TestCavityBoundary_SingleTriangle returns all three edges.
func TestCavityBoundary_SingleTriangle(t *testing.T) {
	_, bad, _ := square(t)

	boundary, err := delaunay.CavityBoundary(bad[:1])
	require.NoError(t, err)
	assert.Len(t, boundary, 3)
	assert.NoError(t, delaunay.CheckClosed(boundary))
}

// TestCavityBoundary_EdgeInThreeTriangles is the invariant violation case.
func TestCavityBoundary_EdgeInThreeTriangles(t *testing.T) {
	arena, bad, ids := square(t)
	extra := arena.Add(geom.Pt(10, 2))
	t3, err := mesh.NewTriangle(arena, ids[0], ids[2], extra)
	require.NoError(t, err)
	t3.ID = 3

	_, err = delaunay.CavityBoundary(append(bad, t3))
	assert.ErrorIs(t, err, delaunay.ErrOpenBoundary)
}

// TestCheckClosed_Failures covers too few edges, a dangling vertex and two
// disjoint cycles.
func TestCheckClosed_Failures(t *testing.T) {
	e := func(a, b int) mesh.Edge { return mesh.Edge{A: mesh.PointID(a), B: mesh.PointID(b)} }
	cases := []struct {
		name     string
		boundary []mesh.Edge
	}{
		{"Empty", nil},
		{"TwoEdges", []mesh.Edge{e(0, 1), e(1, 0)}},
		{"Path", []mesh.Edge{e(0, 1), e(1, 2), e(2, 3)}},
		{"TwoCycles", []mesh.Edge{e(0, 1), e(1, 2), e(2, 0), e(3, 4), e(4, 5), e(5, 3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, delaunay.CheckClosed(tc.boundary), delaunay.ErrOpenBoundary)
		})
	}
}
