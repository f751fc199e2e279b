package paleo

import (
	"errors"
	"math"

	"github.com/strokerec/strokerec/geom"
	"github.com/strokerec/strokerec/strokemodel"
	"gonum.org/v1/gonum/stat"
)

// ErrTooShort is returned by Preprocess when the input stroke has no points.
// Fatal per spec.md §4.3 ("Fails with TooShort if input has <= 0 points").
var ErrTooShort = errors.New("paleo: stroke has no points")

// Preprocess turns a raw stroke into an EnrichedStroke: deduplicated points
// carrying direction, speed, curvature, dy/dx, corners, and the whole-stroke
// scalars every tester depends on. See spec.md §4.3.
func Preprocess(s *strokemodel.Stroke) (*EnrichedStroke, error) {
	if s.Len() <= 0 {
		return nil, ErrTooShort
	}

	e := &EnrichedStroke{Points: dedupe(s.Points())}

	computeDirectionAndSpeed(e.Points)
	computeCurvature(e.Points)
	e.Corners = paulsonCorners(e.Points)

	e.PxLength = pathLength(e.Points)
	computeDyDx(e.Points)
	e.NDDE = computeNDDE(e.Points, e.PxLength)
	e.DCR = computeDCR(e.Points, e.PxLength)

	if len(e.Points) >= threshB && e.PxLength >= threshC {
		trimTails(e)
	}

	n := len(e.Points)
	e.TotRevs = (e.Points[n-1].Dir - e.Points[0].Dir) / (2 * math.Pi)
	e.Overtraced = e.TotRevs > threshD

	endpointDist := geom.Dist(e.Points[0].P.Vec(), e.Points[n-1].P.Vec())
	e.Closed = endpointDist/e.PxLength < threshE && e.TotRevs > threshF

	return e, nil
}

// dedupe drops any point whose timestamp matches the previous kept point's,
// or whose (x,y) matches the previous kept point's — both indicate a
// duplicate sample that would make Δt or Δp divide-by-zero downstream.
// spec.md §4.3 step 1.
func dedupe(pts []strokemodel.Point) []Point {
	out := make([]Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 {
			last := out[len(out)-1].P
			if last.T == p.T || (last.X == p.X && last.Y == p.Y) {
				continue
			}
		}
		p.I = len(out)
		out = append(out, Point{P: p})
	}
	return out
}

// yuDirection is the Yu & Cai direction measure: atan((Δy)/(Δx)), not
// atan2 — per spec.md §4.3 step 2, this is deliberately the single-quadrant
// arctangent, made globally coherent by the unwrap pass that follows.
func yuDirection(a, b strokemodel.Point) float64 {
	return math.Atan(float64(b.Y-a.Y) / float64(b.X-a.X))
}

func computeDirectionAndSpeed(pts []Point) {
	n := len(pts)
	if n < 2 {
		return
	}

	for i := 0; i < n-1; i++ {
		pts[i].Dir = yuDirection(pts[i].P, pts[i+1].P)
		if i > 0 {
			// Unwrap so the direction graph never jumps by more than π,
			// keeping it smooth across the turns freehand drawing produces
			// (spec.md §4.3 step 2, §8 "Direction unwrap").
			for pts[i].Dir-pts[i-1].Dir > math.Pi {
				pts[i].Dir -= 2 * math.Pi
			}
			for pts[i].Dir-pts[i-1].Dir <= -math.Pi {
				pts[i].Dir += 2 * math.Pi
			}
		}

		dt := pts[i+1].P.T - pts[i].P.T
		if dt < 0 {
			dt = -dt
		}
		pts[i].Speed = geom.Dist(pts[i].P.Vec(), pts[i+1].P.Vec()) / float64(dt)
	}

	// The last point has no outgoing segment to derive a direction from;
	// carry the final segment's direction forward so tot_revs and the
	// overtraced/closed tests (which read Points[n-1].Dir) see a direction
	// graph that actually reaches the stroke's last sample.
	pts[n-1].Dir = pts[n-2].Dir
}

// wrapPi wraps d into (-π, π].
func wrapPi(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// yuCurvature computes curvature at the point centered in the 2k+1-point
// window pts[center-k : center+k+1], per spec.md §4.3 step 4: the sum of
// wrapped direction differences over the window's 2k segments, divided by
// the window's path length.
func yuCurvature(pts []Point, center, k int) float64 {
	lo, hi := center-k, center+k

	diffSum := 0.0
	length := 0.0
	for i := lo; i < hi; i++ {
		length += geom.Dist(pts[i].P.Vec(), pts[i+1].P.Vec())
		diffSum += wrapPi(pts[i+1].Dir - pts[i].Dir)
	}
	if length == 0 {
		return 0
	}
	return diffSum / length
}

func computeCurvature(pts []Point) {
	n := len(pts)
	for i := 1; i < n-1; i++ {
		k := yuWindowK
		if i < k {
			k = i
		}
		if n-i-1 < k {
			k = n - i - 1
		}
		pts[i].Curv = yuCurvature(pts, i, k)
	}
}

func pathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += geom.Dist(pts[i-1].P.Vec(), pts[i].P.Vec())
	}
	return total
}

func computeDyDx(pts []Point) {
	for i := 1; i < len(pts); i++ {
		dx := float64(pts[i].P.X - pts[i-1].P.X)
		dy := float64(pts[i].P.Y - pts[i-1].P.Y)
		pts[i].DyDx = dy / dx
	}
}

// computeNDDE locates the points of maximum and minimum dy/dx and returns
// the (order-corrected) arc length strictly between them, normalized by
// total path length. spec.md §4.4.
func computeNDDE(pts []Point, pxLength float64) float64 {
	if len(pts) < 2 {
		return 0
	}
	maxI, minI := 1, 1
	for i := 2; i < len(pts); i++ {
		if pts[i].DyDx > pts[maxI].DyDx {
			maxI = i
		}
		if pts[i].DyDx < pts[minI].DyDx {
			minI = i
		}
	}
	if maxI < minI {
		maxI, minI = minI, maxI
	}

	sub := 0.0
	for i := minI + 1; i < maxI; i++ {
		sub += geom.Dist(pts[i-1].P.Vec(), pts[i].P.Vec())
	}
	if pxLength == 0 {
		return 0
	}
	return sub / pxLength
}

// computeDCR computes the direction-change ratio over the middle 90% of the
// stroke's path length (ignoring the first and last 5%): the ratio of the
// largest step-to-step direction change to the mean one. spec.md §4.4.
func computeDCR(pts []Point, pxLength float64) float64 {
	if pxLength == 0 || len(pts) < 3 {
		return 0
	}

	var diffs []float64
	prog := 0.0
	for i := 1; i < len(pts); i++ {
		prog += geom.Dist(pts[i-1].P.Vec(), pts[i].P.Vec())
		frac := prog / pxLength
		if frac <= 0.05 || frac >= 0.95 {
			continue
		}
		diffs = append(diffs, math.Abs(pts[i].Dir-pts[i-1].Dir))
	}
	if len(diffs) == 0 {
		return 0
	}

	max := diffs[0]
	for _, d := range diffs {
		if d > max {
			max = d
		}
	}
	mean := stat.Mean(diffs, nil)
	if mean == 0 {
		return 0
	}
	return max / mean
}

// trimTails implements spec.md §4.3 step 6: locate the highest-curvature
// index in the first and last 20% of path length and keep only the points
// between them, discarding hooks at the stroke's ends.
func trimTails(e *EnrichedStroke) {
	pts := e.Points
	n := len(pts)
	firstI, lastI := 0, n-1

	prog := 0.0
	for i := 1; i < n-1; i++ {
		prog += geom.Dist(pts[i-1].P.Vec(), pts[i].P.Vec())
		pct := prog / e.PxLength

		switch {
		case pct < 0.20:
			if pts[firstI].Curv < pts[i].Curv {
				firstI = i
			}
		case pct > 0.80:
			if pts[lastI].Curv < pts[i].Curv {
				lastI = i
			}
		}
	}

	breakStroke(e, firstI, lastI)
}

// breakStroke keeps Points[firstIndex..lastIndex] inclusive and renumbers
// point indices and the corner list to match. Unlike the original C source
// (spec.md §9: corners held raw pointers into a reallocated points array,
// so trimming silently invalidated them) corners here are indices, so
// trimming just needs a shift-and-clamp, never leaves a dangling reference.
func breakStroke(e *EnrichedStroke, firstIndex, lastIndex int) {
	trimmed := make([]Point, lastIndex-firstIndex+1)
	copy(trimmed, e.Points[firstIndex:lastIndex+1])
	for i := range trimmed {
		trimmed[i].P.I = i
	}
	e.Points = trimmed

	var corners []int
	for _, c := range e.Corners {
		if c < firstIndex || c > lastIndex {
			continue
		}
		corners = append(corners, c-firstIndex)
	}
	if len(corners) == 0 || corners[0] != 0 {
		corners = append([]int{0}, corners...)
	}
	last := len(trimmed) - 1
	if corners[len(corners)-1] != last {
		corners = append(corners, last)
	}
	e.Corners = corners
}
