package paleo

import (
	"math"

	"github.com/strokerec/strokerec/geom"
	"gonum.org/v1/gonum/stat"
)

// testCircle fits a circle through the stroke's centroid and mean radius,
// then bounds the feature-area error: the quad-area feature area
// accumulated between the stroke and its radial projection onto that
// circle, normalized by the circle's own area. Requires NDDE above threshK
// and the fitted radius above threshN. spec.md §4.5 "Circle".
func testCircle(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if e.NDDE < threshK {
		fail(&r, "circle requires high NDDE")
		return r
	}

	pts := vecsOf(e.Points)
	center, meanR := fitCircle(pts)
	if meanR < threshN {
		fail(&r, "circle radius too small")
		return r
	}

	fa := quadFeatureArea(pts, func(p geom.Vec) geom.Vec { return projectCircle(center, meanR, p) })
	r.FA = fa
	fae := math.Abs(fa) / (math.Pi * meanR * meanR)
	if fae >= threshP {
		fail(&r, "circle FAE too high")
		return r
	}

	r.Shape = Shape{Type: TypeCircle, Circle: &Circle{C: center, R: meanR}}
	return r
}

// fitCircle returns the centroid and the mean distance from centroid to
// each point.
func fitCircle(pts []geom.Vec) (center geom.Vec, meanR float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	center = geom.Vec{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}

	radii := make([]float64, len(pts))
	for i, p := range pts {
		radii[i] = geom.Dist(center, p)
	}
	return center, stat.Mean(radii, nil)
}

// testEllipse picks the longest chord as the major axis, the stroke's widest
// extent on either side of the major-axis line as the minor axis
// (perpendicularChord), and bounds
// the feature-area error of the fit against the resulting ellipse. Requires
// NDDE above threshK and a major axis longer than threshL. spec.md §4.5
// "Ellipse".
func testEllipse(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if e.NDDE < threshK {
		fail(&r, "ellipse requires high NDDE")
		return r
	}

	pts := vecsOf(e.Points)
	majorA, majorB, majLen := longestChord(pts)
	if majLen < threshL {
		fail(&r, "ellipse major axis too short")
		return r
	}

	center := geom.Vec{X: (majorA.X + majorB.X) / 2, Y: (majorA.Y + majorB.Y) / 2}
	minorA, minorB, minLen := perpendicularChord(pts, majorA, majorB, center)

	maj, min := majLen/2, minLen/2
	if maj == 0 || min == 0 {
		fail(&r, "ellipse axes degenerate")
		return r
	}

	theta := math.Atan2(majorB.Y-majorA.Y, majorB.X-majorA.X)
	majorDir := geom.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	minorDir := geom.Vec{X: -math.Sin(theta), Y: math.Cos(theta)}

	proj := func(p geom.Vec) geom.Vec { return projectEllipse(center, majorDir, minorDir, maj, min, p) }
	fa := quadFeatureArea(pts, proj)
	r.FA = fa
	fae := math.Abs(fa) / (math.Pi * maj * min)
	if fae >= threshM {
		fail(&r, "ellipse FAE too high")
		return r
	}

	r.Shape = Shape{Type: TypeEllipse, Ellipse: &Ellipse{
		C:      center,
		MajorA: majorA, MajorB: majorB,
		MinorA: minorA, MinorB: minorB,
		Maj: maj, Min: min,
	}}
	return r
}

// longestChord returns the pair of stroke points farthest apart and their
// distance.
func longestChord(pts []geom.Vec) (a, b geom.Vec, length float64) {
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := geom.Dist(pts[i], pts[j])
			if d > length {
				length = d
				a, b = pts[i], pts[j]
			}
		}
	}
	return a, b, length
}

// perpendicularChord approximates the minor axis by the stroke's widest
// extent perpendicular to the major axis: the points farthest from the
// major-axis line on its positive and negative sides, respectively.
func perpendicularChord(pts []geom.Vec, majorA, majorB, center geom.Vec) (a, b geom.Vec, length float64) {
	dir := geom.Sub(majorB, majorA)
	dirLen := math.Hypot(dir.X, dir.Y)
	if dirLen == 0 {
		return center, center, 0
	}

	var maxPos, maxNeg float64
	var havePos, haveNeg bool
	for _, p := range pts {
		signedDist := geom.Cross(dir, geom.Sub(p, center)) / dirLen
		if signedDist >= 0 {
			if !havePos || signedDist > maxPos {
				maxPos, a, havePos = signedDist, p, true
			}
		} else {
			if !haveNeg || signedDist < maxNeg {
				maxNeg, b, haveNeg = signedDist, p, true
			}
		}
	}
	if !havePos || !haveNeg {
		return center, center, 0
	}
	return a, b, geom.Dist(a, b)
}

// projectEllipse maps p onto the ellipse's boundary: p is expressed in the
// ellipse's own axis-aligned frame, squished into a unit circle by
// dividing each axis by its semi-length, normalized onto that circle, then
// unsquished back into the plane.
func projectEllipse(center, majorDir, minorDir geom.Vec, maj, min float64, p geom.Vec) geom.Vec {
	d := geom.Sub(p, center)
	u := d.X*majorDir.X + d.Y*majorDir.Y
	v := d.X*minorDir.X + d.Y*minorDir.Y

	su, sv := u/maj, v/min
	norm := math.Hypot(su, sv)
	if norm == 0 {
		su, sv = 1, 0
	} else {
		su, sv = su/norm, sv/norm
	}
	u2, v2 := su*maj, sv*min
	return geom.Vec{
		X: center.X + u2*majorDir.X + v2*minorDir.X,
		Y: center.Y + u2*majorDir.Y + v2*minorDir.Y,
	}
}
