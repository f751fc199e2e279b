// Package geom implements the pure 2-D geometry primitives the shape
// recognizers build on: distance, vector arithmetic, triangle/quad areas, and
// line/segment intersection. Every function here is a leaf — no recognizer
// state, no allocation beyond the returned value.
package geom

import "math"

// Vec is a point or vector in the plane, stored in double precision
// regardless of the integer coordinates a Stroke records its points in.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Hypot(dx, dy)
}

// Sub returns a - b.
func Sub(a, b Vec) Vec {
	return Vec{X: a.X - b.X, Y: a.Y - b.Y}
}

// Cross returns the 2-D cross product a.X*b.Y - a.Y*b.X.
func Cross(a, b Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// TriangleArea returns the unsigned area of the triangle a,b,c.
func TriangleArea(a, b, c Vec) float64 {
	return 0.5 * math.Abs(Cross(Sub(b, a), Sub(c, a)))
}

// QuadArea returns the area of the quad a,b,c,d as the sum of the unsigned
// areas of triangles a,b,c and a,c,d. The result depends on point order and
// is never negative: the two triangles of a bowtie-shaped quad add rather
// than cancel.
func QuadArea(a, b, c, d Vec) float64 {
	return TriangleArea(a, b, c) + TriangleArea(a, c, d)
}

// segSide returns which side of line pq point r lies on, via the sign of
// the cross product of (q-p) and (r-p).
func segSide(p, q, r Vec) float64 {
	return Cross(Sub(q, p), Sub(r, p))
}

// SegSegIntersect reports whether segments ab and cd properly intersect.
// Parallel (and collinear) segments are reported as non-intersecting.
func SegSegIntersect(a, b, c, d Vec) bool {
	d1 := segSide(c, d, a)
	d2 := segSide(c, d, b)
	d3 := segSide(a, b, c)
	d4 := segSide(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// LineLineIntersection computes the intersection of the infinite lines
// through a,b and through c,d. It reports false for parallel lines (including
// coincident ones), leaving out unset.
func LineLineIntersection(a, b, c, d Vec) (out Vec, ok bool) {
	denom := Cross(Sub(b, a), Sub(d, c))
	if denom == 0 {
		return Vec{}, false
	}

	// Solve a + t*(b-a) = c + u*(d-c) for t.
	ac := Sub(c, a)
	t := Cross(ac, Sub(d, c)) / denom
	return Vec{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, true
}

// SegLineIntersection computes the intersection of segment ab with the
// infinite line through c,d, reporting false if the lines are parallel or
// the intersection point falls outside segment ab.
func SegLineIntersection(a, b, c, d Vec) (out Vec, ok bool) {
	p, ok := LineLineIntersection(a, b, c, d)
	if !ok {
		return Vec{}, false
	}

	// p must lie within [a,b]; since p is already on line ab, a bounding-box
	// check suffices.
	if p.X < math.Min(a.X, b.X)-1e-9 || p.X > math.Max(a.X, b.X)+1e-9 {
		return Vec{}, false
	}
	if p.Y < math.Min(a.Y, b.Y)-1e-9 || p.Y > math.Max(a.Y, b.Y)+1e-9 {
		return Vec{}, false
	}
	return p, true
}
