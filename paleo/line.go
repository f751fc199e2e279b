package paleo

import (
	"math"

	"github.com/strokerec/strokerec/geom"
)

// fittedLine is a least-squares line fit, handling the near-vertical case
// separately since a vertical line has no finite slope.
type fittedLine struct {
	vertical bool
	slope    float64 // valid when !vertical
	yInt     float64 // y-intercept, valid when !vertical
	x0       float64 // x-coordinate of the line, valid when vertical
}

// fitLineSegment computes the ordinary least-squares line through pts:
// slope = (Σxy - Σx·ȳ) / (Σx² - Σx·x̄), falling back to a vertical line
// (x = x̄) when the denominator vanishes, i.e. when pts barely vary in x.
func fitLineSegment(pts []geom.Vec) fittedLine {
	n := float64(len(pts))
	var sumX, sumY, sumX2, sumXY float64
	for _, p := range pts {
		sumX += p.X
		sumY += p.Y
		sumX2 += p.X * p.X
		sumXY += p.X * p.Y
	}
	xMean := sumX / n
	yMean := sumY / n

	denom := sumX2 - sumX*xMean
	if math.Abs(denom) < 1e-7 {
		return fittedLine{vertical: true, x0: xMean}
	}
	slope := (sumXY - sumX*yMean) / denom
	return fittedLine{slope: slope, yInt: yMean - slope*xMean}
}

// project returns the foot of the perpendicular from p onto the fitted
// line.
func (l fittedLine) project(p geom.Vec) geom.Vec {
	if l.vertical {
		return geom.Vec{X: l.x0, Y: p.Y}
	}
	t := (p.X + (p.Y-l.yInt)*l.slope) / (1 + l.slope*l.slope)
	return geom.Vec{X: t, Y: l.yInt + t*l.slope}
}

func (l fittedLine) distanceTo(p geom.Vec) float64 {
	return geom.Dist(p, l.project(p))
}

// testLine least-squares fits a straight line through the whole stroke and
// bounds two error metrics against it: LSE, the per-length mean squared
// perpendicular distance, and FA, the quad-area feature area accumulated
// between the stroke and its projection onto the fit. Requires exactly 2 or
// 3 corners (spec.md §4.5 "Line segment").
func testLine(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if len(e.Corners) != 2 && len(e.Corners) != 3 {
		fail(&r, "line requires 2 or 3 corners")
		return r
	}
	if e.PxLength == 0 {
		fail(&r, "degenerate line: zero path length")
		return r
	}

	pts := vecsOf(e.Points)
	fitted := fitLineSegment(pts)

	od2 := 0.0
	for _, p := range pts {
		d := fitted.distanceTo(p)
		od2 += d * d
	}
	r.LSE = od2 / e.PxLength
	r.FA = quadFeatureArea(pts, fitted.project)
	if r.LSE >= threshG {
		fail(&r, "line LSE too high")
		return r
	}

	if math.Abs(r.FA)/e.PxLength >= threshH {
		fail(&r, "line FA/length too high")
		return r
	}

	r.Shape = Shape{Type: TypeLine, Line: &Line{
		P0: fitted.project(pts[0]),
		P1: fitted.project(pts[len(pts)-1]),
	}}
	return r
}

// testPolyLine runs the line-segment test independently on every
// corner-delimited sub-range and requires every one of them to pass; a
// single badly-fit segment fails the whole shape even if the others average
// out well. The mean of the passing sub-segments' LSEs must still clear
// threshI. spec.md §4.5 "Poly-line".
func testPolyLine(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if e.DCR < threshJ {
		fail(&r, "poly-line requires high DCR")
		return r
	}
	if len(e.Corners) < 2 {
		fail(&r, "poly-line requires at least 2 corners")
		return r
	}

	totalLSE := 0.0
	for i := 1; i < len(e.Corners); i++ {
		seg := segmentFromTo(e, e.Corners[i-1], e.Corners[i])
		segR := testLine(seg)
		if !segR.Possible {
			fail(&r, "poly-line sub-segment failed its own line test")
			return r
		}
		totalLSE += segR.LSE
	}
	r.LSE = totalLSE / float64(len(e.Corners)-1)
	if r.LSE >= threshI {
		fail(&r, "poly-line average LSE too high")
		return r
	}

	r.Shape = Shape{Type: TypePolyLine, PolyLine: &PolyLine{Points: e.cornerStrokePoints()}}
	return r
}

// firstSubSegmentFA returns the feature area of the line test run on the
// stroke's first corner-to-corner sub-range, the reference value the
// hierarchy's step 2/4/5 comparisons weigh circle/ellipse/arc fits against
// (spec.md §4.6).
func firstSubSegmentFA(e *EnrichedStroke) (fa float64, ok bool) {
	if len(e.Corners) < 2 {
		return 0, false
	}
	seg := segmentFromTo(e, e.Corners[0], e.Corners[1])
	segR := testLine(seg)
	return segR.FA, true
}
