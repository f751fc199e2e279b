package paleo

import (
	"math"

	"github.com/strokerec/strokerec/geom"
)

// testHelix shares the spiral's sweep-partitioning and monotonic-radius
// checks, but drops the near-closed endpoint requirement and inverts it: a
// helix is expected to drift away from its start as it winds, where a
// spiral is expected to return near it. spec.md §4.5 "Helix".
func testHelix(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if e.NDDE < threshK {
		fail(&r, "helix requires high NDDE")
		return r
	}

	n := len(e.Points)
	signedThetaT := e.Points[n-1].Dir - e.Points[0].Dir
	if math.Abs(signedThetaT) < 2*math.Pi {
		fail(&r, "helix requires at least one full sweep")
		return r
	}

	pts := vecsOf(e.Points)
	center, bboxR, idealR := wholeStrokeCircle(pts)

	parts := partitionBySweep(e.Points, center)
	if !monotonicRadii(parts) {
		fail(&r, "helix radii not monotonic across sweeps")
		return r
	}
	if centersDrift(parts, idealR) {
		fail(&r, "helix center drifts too far across sweeps")
		return r
	}
	if maxPairwiseCentroidSpread(parts, idealR) {
		fail(&r, "helix sub-centers spread too far apart")
		return r
	}

	endDist := geom.Dist(pts[0], pts[n-1])
	if e.PxLength > 0 && endDist/e.PxLength < threshU {
		fail(&r, "helix endpoints too close together; see spiral instead")
		return r
	}

	r.Shape = Shape{Type: TypeHelix, Helix: &Helix{
		C: center, R: bboxR,
		ThetaT: math.Abs(signedThetaT), ThetaF: normalizeAngle(pts[n-1], center),
		CW: int(sgn(signedThetaT)),
	}}
	return r
}
