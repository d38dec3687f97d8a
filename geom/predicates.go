// SPDX-License-Identifier: MIT

package geom

import "math"

// Orient returns twice the signed area of triangle (a, b, c).
//
//	> 0  — a, b, c turn counter-clockwise
//	< 0  — clockwise
//	= 0  — collinear (up to rounding)
//
// Complexity: O(1).
func Orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// InCircumcircle reports whether d lies strictly inside the circle through
// a, b and c.
//
// Description:
//
//	Translate so d is the origin and lift every corner onto the paraboloid
//	z = x² + y². The sign of
//
//	    | ax−dx  ay−dy  (ax−dx)²+(ay−dy)² |
//	    | bx−dx  by−dy  (bx−dx)²+(by−dy)² |
//	    | cx−dx  cy−dy  (cx−dx)²+(cy−dy)² |
//
//	is positive iff d is inside the circle, provided a, b, c are CCW.
//	With a clockwise triple the sign flips; the predicate does not check.
//
// Points exactly on the circle (determinant == 0) are outside. Collinear
// a, b, c give a (near-)zero determinant and the outcome is rounding noise.
//
// Complexity: O(1).
func InCircumcircle(a, b, c, d Point) bool {
	return inCircleDet(a, b, c, d) > 0
}

// inCircleDet expands the lifted determinant along its third column.
func inCircleDet(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	return alift*(bdx*cdy-cdx*bdy) -
		blift*(adx*cdy-cdx*ady) +
		clift*(adx*bdy-bdx*ady)
}

// Circumcircle returns the centre and radius of the circle through a, b, c.
// ok is false when the three points are collinear (no finite circle).
//
// The circle is solved in coordinates relative to a and shifted back, so
// the result keeps its precision for points far from the origin (map
// coordinates around 1e6 and beyond).
//
// Insertion never calls this; it exists for validation and diagnostics
// where an explicit circle is easier to reason about than a determinant sign.
func Circumcircle(a, b, c Point) (center Point, radius float64, ok bool) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y

	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return Point{}, math.Inf(1), false
	}
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (cy*b2 - by*c2) / d
	uy := (bx*c2 - cx*b2) / d

	return Point{X: a.X + ux, Y: a.Y + uy}, math.Hypot(ux, uy), true
}
