// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. It carries no identity: two Points with equal
// coordinates are interchangeable as values.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist2 returns the squared Euclidean distance between p and q.
func (p Point) Dist2(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y

	return dx*dx + dy*dy
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Rect is an axis-aligned closed rectangle [Min.X, Max.X] × [Min.Y, Max.Y].
type Rect struct {
	Min, Max Point
}

// R builds a Rect from two opposite corners in any order.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// Width returns Max.X − Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y − Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies in the closed rectangle r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// IsValid reports whether r has finite corners and Min ≤ Max on both axes.
func (r Rect) IsValid() bool {
	return r.Min.IsFinite() && r.Max.IsFinite() && r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Bounds returns the smallest Rect containing every point in pts.
// Returns ErrNoPoints for an empty slice.
// Complexity: O(n).
func Bounds(pts []Point) (Rect, error) {
	if len(pts) == 0 {
		return Rect{}, ErrNoPoints
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}

	return r, nil
}
