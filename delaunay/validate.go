// SPDX-License-Identifier: MIT

package delaunay

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/trimesh/geom"
)

// DefaultValidateEps is the relative tolerance used by Validate when eps ≤ 0.
const DefaultValidateEps = 1e-9

// Validate checks r against the properties every Delaunay result must
// have. It is a debugging aid; nothing in the build path calls it.
//
// Checks, in order:
//  1. indices in range and distinct per triangle        → ErrBadIndex
//  2. every triangle strictly CCW (positive area)       → ErrDegenerate
//  3. no vertex strictly inside any circumcircle        → ErrNotDelaunay
//  4. no two triangle interiors intersect               → ErrOverlap
//
// eps is relative: radii are shrunk by r·eps and orientation tests are
// relaxed by eps·L² where L is the larger side of the vertex bounding box.
// A vertex counts as inside a circumcircle only when the tolerant distance
// test and the in-circle determinant (the predicate insertion uses) agree.
//
// Complexity: O(T·V) for the circle check; the overlap check only pairs
// triangles whose bounding boxes meet, O(T log T + T·m) for m such pairs.
func (r *Result) Validate(eps float64) error {
	if eps <= 0 {
		eps = DefaultValidateEps
	}
	nv := len(r.Vertices)
	for ti, t := range r.Triangles {
		for k := 0; k < 3; k++ {
			if t[k] < 0 || t[k] >= nv {
				return fmt.Errorf("triangle %d index %d: %w", ti, t[k], ErrBadIndex)
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return fmt.Errorf("triangle %d %v: %w", ti, t, ErrBadIndex)
		}
	}
	for ti := range r.Triangles {
		a, b, c := r.Corners(ti)
		if geom.Orient(a, b, c) <= 0 {
			return fmt.Errorf("triangle %d: %w", ti, ErrDegenerate)
		}
	}
	if err := r.checkEmptyCircles(eps); err != nil {
		return err
	}

	return r.checkOverlap(eps)
}

func (r *Result) checkEmptyCircles(eps float64) error {
	for ti, t := range r.Triangles {
		a, b, c := r.Corners(ti)
		center, radius, ok := geom.Circumcircle(a, b, c)
		if !ok {
			return fmt.Errorf("triangle %d: %w", ti, ErrDegenerate)
		}
		limit := radius * (1 - eps)
		for vi, v := range r.Vertices {
			if vi == t[0] || vi == t[1] || vi == t[2] {
				continue
			}
			if math.Sqrt(center.Dist2(v)) < limit && geom.InCircumcircle(a, b, c, v) {
				return fmt.Errorf("vertex %d %v inside circumcircle of triangle %d: %w", vi, v, ti, ErrNotDelaunay)
			}
		}
	}

	return nil
}

// checkOverlap runs a separating-axis test on every pair of triangles whose
// bounding boxes intersect. For convex polygons one of the edges'
// supporting lines separates them whenever their interiors are disjoint.
//
// Steps:
//  1. Compute each triangle's bounding box.
//  2. Order triangles by box MinX.
//  3. Sweep: pair each triangle only with later ones whose MinX does not
//     pass its MaxX, and skip pairs whose Y ranges are disjoint.
//  4. Run the separating-axis test on the surviving pairs.
func (r *Result) checkOverlap(eps float64) error {
	bounds, err := geom.Bounds(r.Vertices)
	if err != nil {
		return nil
	}
	side := math.Max(math.Max(bounds.Width(), bounds.Height()), 1)
	tol := eps * side * side

	// 1. Boxes, one per triangle.
	boxes := make([]geom.Rect, len(r.Triangles))
	for i := range r.Triangles {
		a, b, c := r.Corners(i)
		boxes[i], _ = geom.Bounds([]geom.Point{a, b, c})
	}

	// 2. Sweep order by left edge.
	order := make([]int, len(r.Triangles))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(x, y int) int { return cmp.Compare(boxes[x].Min.X, boxes[y].Min.X) })

	// 3-4. Candidate pairs, then the exact test.
	for oi, i := range order {
		bi := boxes[i]
		ti := r.cornerArray(i)
		for _, j := range order[oi+1:] {
			bj := boxes[j]
			if bj.Min.X > bi.Max.X {
				break // every later box starts further right
			}
			if bj.Min.Y > bi.Max.Y || bj.Max.Y < bi.Min.Y {
				continue
			}
			tj := r.cornerArray(j)
			if !separated(ti, tj, tol) && !separated(tj, ti, tol) {
				lo, hi := min(i, j), max(i, j)
				return fmt.Errorf("triangles %d and %d: %w", lo, hi, ErrOverlap)
			}
		}
	}

	return nil
}

func (r *Result) cornerArray(i int) [3]geom.Point {
	a, b, c := r.Corners(i)

	return [3]geom.Point{a, b, c}
}

// separated reports whether some edge of the CCW triangle s has every
// corner of o on its right side or on the line (within tol).
func separated(s, o [3]geom.Point, tol float64) bool {
	for e := 0; e < 3; e++ {
		p, q := s[e], s[(e+1)%3]
		outside := true
		for _, v := range o {
			if geom.Orient(p, q, v) > tol {
				outside = false
				break
			}
		}
		if outside {
			return true
		}
	}

	return false
}
