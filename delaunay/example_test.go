// File: delaunay/example_test.go
package delaunay_test

import (
	"fmt"

	"github.com/katalvlaran/trimesh/delaunay"
	"github.com/katalvlaran/trimesh/geom"
)

////////////////////////////////////////////////////////////////////////////////
// Example: incremental construction
////////////////////////////////////////////////////////////////////////////////

// ExampleTriangulation demonstrates the New → AddPoint → Finish lifecycle.
// Scenario:
//
//   - Frame sized for a 20×20 area
//   - Four corners of a 10×10 square inserted in order
//   - Expect two triangles covering area 100
//
// Complexity: O(n²) for n points.
func ExampleTriangulation() {
	tr, err := delaunay.New(20, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}} {
		if _, err = tr.AddPoint(p[0], p[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	res, err := tr.Finish()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("vertices=%d triangles=%d area=%.0f\n", len(res.Vertices), res.Len(), res.TotalArea())

	// Output:
	// vertices=4 triangles=2 area=100
}

////////////////////////////////////////////////////////////////////////////////
// Example: one-shot Triangulate + derived topology
////////////////////////////////////////////////////////////////////////////////

// ExampleTriangulate shows the batch helper and the derived edge list.
// A square with its centre becomes a four-triangle fan: 4 hull edges and
// 4 spokes.
func ExampleTriangulate() {
	pts := []geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(5, 5),
	}
	res, err := delaunay.Triangulate(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("triangles:", res.Len())
	fmt.Println("edges:", len(res.Edges()))
	fmt.Println("valid:", res.Validate(0) == nil)

	// Output:
	// triangles: 4
	// edges: 8
	// valid: true
}
