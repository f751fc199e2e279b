package paleo

import (
	"math"

	"github.com/strokerec/strokerec/geom"
)

// spiralPartition is one 2π sweep of a candidate spiral/helix: its centroid
// (the plain coordinate mean of its points, used to track drift) and its
// radius (mean distance from the whole-stroke center, not the partition's
// own centroid, used to track growth/shrinkage). spec.md §4.5 "Spiral".
type spiralPartition struct {
	centroid geom.Vec
	radius   float64
}

// wholeStrokeCircle computes the single center and pair of radii every
// partition in a spiral/helix candidate is measured against: a bounding-box
// center and radius, and the mean distance from that same center to every
// stroke point. spec.md §9 notes the original computed this per-partition
// instead of once per stroke, which is what let partition-local drift mask
// a stroke that wandered overall.
func wholeStrokeCircle(pts []geom.Vec) (center geom.Vec, bboxR, idealR float64) {
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	center = geom.Vec{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	bboxR = (maxX - minX + maxY - minY) / 4

	sum := 0.0
	for _, p := range pts {
		sum += geom.Dist(center, p)
	}
	idealR = sum / float64(len(pts))
	return center, bboxR, idealR
}

// partitionBySweep splits the stroke into consecutive runs, each spanning
// one full 2π turn of the (unwrapped) direction graph, and fits a centroid
// and a center-relative radius to each.
func partitionBySweep(pts []Point, center geom.Vec) []spiralPartition {
	if len(pts) == 0 {
		return nil
	}

	var parts []spiralPartition
	start := 0
	base := pts[0].Dir
	for i := 1; i < len(pts); i++ {
		if math.Abs(pts[i].Dir-base) >= 2*math.Pi || i == len(pts)-1 {
			parts = append(parts, fitPartition(pts[start:i+1], center))
			start = i
			base = pts[i].Dir
		}
	}
	if len(parts) == 0 {
		parts = append(parts, fitPartition(pts, center))
	}
	return parts
}

func fitPartition(pts []Point, center geom.Vec) spiralPartition {
	sumX, sumY, sumR := 0.0, 0.0, 0.0
	for _, p := range pts {
		v := p.P.Vec()
		sumX += v.X
		sumY += v.Y
		sumR += geom.Dist(center, v)
	}
	n := float64(len(pts))
	return spiralPartition{
		centroid: geom.Vec{X: sumX / n, Y: sumY / n},
		radius:   sumR / n,
	}
}

// monotonicRadii reports whether the partitions' radii are monotonically
// increasing or decreasing, the signature of a spiral winding in or out.
func monotonicRadii(parts []spiralPartition) bool {
	if len(parts) < 2 {
		return true
	}
	inc, dec := true, true
	for i := 1; i < len(parts); i++ {
		if parts[i].radius < parts[i-1].radius {
			inc = false
		}
		if parts[i].radius > parts[i-1].radius {
			dec = false
		}
	}
	return inc || dec
}

// centersDrift reports whether the partitions' centroids wander too much
// relative to the whole-stroke center: the sum of consecutive centroid
// distances, normalized by idealR times the number of sweep increments,
// must stay below threshT. spec.md §4.5 "Spiral".
func centersDrift(parts []spiralPartition, idealR float64) bool {
	if len(parts) < 2 || idealR == 0 {
		return false
	}
	sum := 0.0
	for i := 1; i < len(parts); i++ {
		sum += geom.Dist(parts[i-1].centroid, parts[i].centroid)
	}
	increments := float64(len(parts) - 1)
	return sum/(idealR*increments) >= threshT
}

// maxPairwiseCentroidSpread reports whether any two partitions' centroids
// (not just consecutive ones) are farther apart than 2*idealR, a coarser
// drift check that a purely consecutive-pair comparison can miss when a
// stroke slides back toward an earlier position it never stayed at.
func maxPairwiseCentroidSpread(parts []spiralPartition, idealR float64) bool {
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			if geom.Dist(parts[i].centroid, parts[j].centroid) >= 2*idealR {
				return true
			}
		}
	}
	return false
}

// testSpiral requires an overtraced stroke with NDDE above threshK, at
// least one full 2π sweep, radii that grow or shrink monotonically across
// sweeps (measured from a single whole-stroke center), a center that holds
// roughly still both consecutively and pairwise, and a nearly-closed
// endpoint. The emitted radius is the whole-stroke bounding-box radius, not
// the mean one. spec.md §4.5 "Spiral".
func testSpiral(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if !e.Overtraced {
		fail(&r, "spiral requires an overtraced stroke")
		return r
	}
	if e.NDDE < threshK {
		fail(&r, "spiral requires high NDDE")
		return r
	}

	n := len(e.Points)
	signedThetaT := e.Points[n-1].Dir - e.Points[0].Dir
	if math.Abs(signedThetaT) < 2*math.Pi {
		fail(&r, "spiral requires at least one full sweep")
		return r
	}

	pts := vecsOf(e.Points)
	center, bboxR, idealR := wholeStrokeCircle(pts)

	parts := partitionBySweep(e.Points, center)
	if !monotonicRadii(parts) {
		fail(&r, "spiral radii not monotonic across sweeps")
		return r
	}
	if centersDrift(parts, idealR) {
		fail(&r, "spiral center drifts too far across sweeps")
		return r
	}
	if maxPairwiseCentroidSpread(parts, idealR) {
		fail(&r, "spiral sub-centers spread too far apart")
		return r
	}

	endDist := geom.Dist(pts[0], pts[n-1])
	if e.PxLength > 0 && endDist/e.PxLength >= threshU {
		fail(&r, "spiral endpoints too far apart")
		return r
	}
	if bboxR > 0 && idealR/bboxR >= threshS {
		fail(&r, "spiral mean/bbox radius ratio too high")
		return r
	}

	r.Shape = Shape{Type: TypeSpiral, Spiral: &Spiral{
		C: center, R: bboxR,
		ThetaT: math.Abs(signedThetaT), ThetaF: normalizeAngle(pts[n-1], center),
		CW: int(sgn(signedThetaT)),
	}}
	return r
}

// normalizeAngle returns the angle from center to p, normalized into
// [0, 2π), independent of the stroke's own unwrapped direction graph.
func normalizeAngle(p, center geom.Vec) float64 {
	theta := math.Atan2(p.Y-center.Y, p.X-center.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

func sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
