package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/geom"
)

func TestConvexHull_Square(t *testing.T) {
	pts := []geom.Point{
		geom.Pt(5, 5), geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(5, 0), // (5,0) is on an edge
		geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(3, 7), geom.Pt(0, 0), // duplicate corner
	}
	hull := geom.ConvexHull(pts)

	require.Len(t, hull, 4)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}, hull)
	assert.Equal(t, 100.0, geom.PolygonArea(hull), "CCW ring has positive area")
}

func TestConvexHull_Degenerate(t *testing.T) {
	assert.Empty(t, geom.ConvexHull(nil))
	assert.Len(t, geom.ConvexHull([]geom.Point{geom.Pt(1, 1)}), 1)

	line := geom.ConvexHull([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3)})
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(3, 3)}, line)
	assert.Equal(t, 0.0, geom.PolygonArea(line))
}

func TestPolygonArea_Orientation(t *testing.T) {
	ccw := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 3)}
	cw := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 3), geom.Pt(4, 0)}

	assert.Equal(t, 6.0, geom.PolygonArea(ccw))
	assert.Equal(t, -6.0, geom.PolygonArea(cw))
	assert.Equal(t, 6.0, geom.TriangleArea(cw[0], cw[1], cw[2]))
}

func TestBounds(t *testing.T) {
	_, err := geom.Bounds(nil)
	assert.ErrorIs(t, err, geom.ErrNoPoints)

	r, err := geom.Bounds([]geom.Point{geom.Pt(3, -1), geom.Pt(-2, 4), geom.Pt(0, 0)})
	require.NoError(t, err)
	assert.Equal(t, geom.R(-2, -1, 3, 4), r)
	assert.Equal(t, 5.0, r.Width())
	assert.Equal(t, 5.0, r.Height())
	assert.Equal(t, geom.Pt(0.5, 1.5), r.Center())
	assert.True(t, r.Contains(geom.Pt(3, 4)))
	assert.False(t, r.Contains(geom.Pt(3.01, 4)))
	assert.True(t, r.IsValid())
}
