package paleo

import (
	"math"

	"github.com/strokerec/strokerec/geom"
)

// testArc fits a circle through the stroke's two endpoints and its midpoint
// sample, then bounds the quad-area feature-area error of the remaining
// points against that circle, normalized by the circle's area. Requires
// NDDE above threshK, DCR above threshJ, and a radius above threshN.
// spec.md §4.5 "Arc".
func testArc(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if e.NDDE < threshK {
		fail(&r, "arc requires high NDDE")
		return r
	}
	if e.DCR < threshJ {
		fail(&r, "arc requires high DCR")
		return r
	}

	pts := vecsOf(e.Points)
	n := len(pts)
	p0 := pts[0]
	p1 := pts[n-1]
	mid := pts[n/2]

	center, radius, ok := circleThroughThree(p0, mid, p1)
	if !ok {
		fail(&r, "arc endpoints and midpoint are collinear")
		return r
	}
	if radius < threshN {
		fail(&r, "arc radius too small")
		return r
	}

	fa := quadFeatureArea(pts, func(p geom.Vec) geom.Vec { return projectCircle(center, radius, p) })
	r.FA = fa
	fae := math.Abs(fa) / (math.Pi * radius * radius)
	if fae >= threshQ {
		fail(&r, "arc FAE too high")
		return r
	}

	theta0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	theta1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	cw := geom.Cross(geom.Sub(mid, p0), geom.Sub(p1, p0)) < 0

	r.Shape = Shape{Type: TypeArc, Arc: &Arc{C: center, R: radius, Theta0: theta0, Theta1: theta1, CW: cw}}
	return r
}

// circleThroughThree returns the circle passing through three non-collinear
// points, via the perpendicular-bisector intersection.
func circleThroughThree(a, b, c geom.Vec) (center geom.Vec, radius float64, ok bool) {
	midAB := geom.Vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	midBC := geom.Vec{X: (b.X + c.X) / 2, Y: (b.Y + c.Y) / 2}

	dirAB := geom.Sub(b, a)
	dirBC := geom.Sub(c, b)
	perpAB := geom.Vec{X: -dirAB.Y, Y: dirAB.X}
	perpBC := geom.Vec{X: -dirBC.Y, Y: dirBC.X}

	center, ok = geom.LineLineIntersection(midAB, geom.Vec{X: midAB.X + perpAB.X, Y: midAB.Y + perpAB.Y},
		midBC, geom.Vec{X: midBC.X + perpBC.X, Y: midBC.Y + perpBC.Y})
	if !ok {
		return geom.Vec{}, 0, false
	}
	radius = geom.Dist(center, a)
	return center, radius, true
}
