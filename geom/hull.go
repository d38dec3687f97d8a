// SPDX-License-Identifier: MIT

package geom

import (
	"cmp"
	"math"
	"slices"
)

// TriangleArea returns the unsigned area of triangle (a, b, c).
func TriangleArea(a, b, c Point) float64 {
	return math.Abs(Orient(a, b, c)) / 2
}

// PolygonArea returns the signed area of the closed ring poly using the
// shoelace formula. CCW rings are positive. The ring must not repeat its
// first vertex at the end.
// Complexity: O(n).
func PolygonArea(poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}

	return sum / 2
}

// ConvexHull returns the convex hull of pts in CCW order, starting at the
// leftmost (then lowest) vertex. Collinear points on hull edges and duplicate
// coordinates are dropped. Fewer than three distinct non-collinear points
// yield the degenerate hull (0, 1 or 2 vertices).
//
// Algorithm: Andrew's monotone chain.
// Complexity: O(n log n) time, O(n) memory.
func ConvexHull(pts []Point) []Point {
	if len(pts) < 3 {
		return slices.Clone(pts)
	}
	sorted := slices.Clone(pts)
	slices.SortFunc(sorted, func(p, q Point) int {
		if c := cmp.Compare(p.X, q.X); c != 0 {
			return c
		}

		return cmp.Compare(p.Y, q.Y)
	})
	sorted = slices.Compact(sorted)
	if len(sorted) < 3 {
		return sorted
	}

	hull := make([]Point, 0, 2*len(sorted))
	// lower chain
	for _, p := range sorted {
		for len(hull) >= 2 && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// upper chain
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}
