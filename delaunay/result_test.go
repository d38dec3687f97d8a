package delaunay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/delaunay"
	"github.com/katalvlaran/trimesh/geom"
)

// fan builds the square-with-centre triangulation: four triangles around
// (5,5), each with one hull edge.
func fan(t *testing.T) *delaunay.Result {
	t.Helper()
	tr, err := delaunay.New(10, 10)
	require.NoError(t, err)
	require.NoError(t, tr.AddPoints([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(5, 5),
	}))
	res, err := tr.Finish()
	require.NoError(t, err)
	require.Equal(t, 4, res.Len())

	return res
}

func TestResult_Edges(t *testing.T) {
	res := fan(t)
	edges := res.Edges()

	assert.Len(t, edges, 8, "4 hull edges + 4 spokes")
	for i, e := range edges {
		assert.Less(t, e[0], e[1], "edge %d not normalized", i)
		if i > 0 {
			prev := edges[i-1]
			assert.True(t, prev[0] < e[0] || (prev[0] == e[0] && prev[1] < e[1]), "edges not sorted at %d", i)
		}
	}
}

func TestResult_Neighbors(t *testing.T) {
	res := fan(t)
	nb := res.Neighbors()
	require.Len(t, nb, res.Len())

	for ti, row := range nb {
		hull, inner := 0, 0
		for e, other := range row {
			if other == -1 {
				hull++
				continue
			}
			inner++
			// symmetry: other points back at ti across the same edge
			assert.Contains(t, nb[other], ti, "triangle %d edge %d", ti, e)
		}
		assert.Equal(t, 1, hull, "triangle %d", ti)
		assert.Equal(t, 2, inner, "triangle %d", ti)
	}
}

func TestResult_Area(t *testing.T) {
	res := fan(t)
	for i := 0; i < res.Len(); i++ {
		assert.InDelta(t, 25.0, res.Area(i), epsArea)
	}
	assert.InDelta(t, 100.0, res.TotalArea(), epsArea)
}

// TestValidate_Violations feeds hand-built broken results to Validate.
func TestValidate_Violations(t *testing.T) {
	sq := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	cases := []struct {
		name string
		res  delaunay.Result
		err  error
	}{
		{
			name: "IndexOutOfRange",
			res:  delaunay.Result{Vertices: sq, Triangles: [][3]int{{0, 1, 7}}},
			err:  delaunay.ErrBadIndex,
		},
		{
			name: "RepeatedIndex",
			res:  delaunay.Result{Vertices: sq, Triangles: [][3]int{{0, 1, 1}}},
			err:  delaunay.ErrBadIndex,
		},
		{
			name: "Clockwise",
			res:  delaunay.Result{Vertices: sq, Triangles: [][3]int{{0, 2, 1}}},
			err:  delaunay.ErrDegenerate,
		},
		{
			// thin triangle whose circumcircle swallows the fourth vertex
			name: "NotDelaunay",
			res: delaunay.Result{
				Vertices:  []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(5, 1), geom.Pt(5, -1)},
				Triangles: [][3]int{{0, 1, 2}},
			},
			err: delaunay.ErrNotDelaunay,
		},
		{
			name: "Overlap",
			res: delaunay.Result{
				Vertices:  sq,
				Triangles: [][3]int{{0, 1, 2}, {0, 1, 3}},
			},
			err: delaunay.ErrOverlap,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.res.Validate(0), tc.err)
		})
	}
}
