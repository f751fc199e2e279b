package paleo

import "math"

// paulsonCorners finds corner points along an enriched point sequence: an
// initial distance-walk pass places candidates, then merge and replace
// passes collapse and relocate them against their neighborhoods until the
// corner set stops changing. spec.md §4.3 step 5.
//
// The returned indices always include 0 and len(pts)-1 and are strictly
// increasing.
func paulsonCorners(pts []Point) []int {
	n := len(pts)
	if n <= 2 {
		return endpointsOnly(n)
	}

	corners := initialCorners(pts)

	// Merge and replace until the corner set stops changing. Freehand
	// strokes converge in a handful of passes; this cap just guards
	// against two configurations trading places forever.
	for i := 0; i < 20; i++ {
		merged := mergeCorners(pts, corners)
		replaced := replaceCorners(pts, merged)
		if sameCorners(replaced, corners) {
			return replaced
		}
		corners = replaced
	}
	return corners
}

func endpointsOnly(n int) []int {
	if n <= 1 {
		return []int{0}
	}
	return []int{0, n - 1}
}

// initialCorners walks the stroke from its last placed corner, accumulating
// the straight-line distance to each following point (normalized by the
// stroke's total path length); once that distance exceeds threshY, the
// point just before the current one becomes the next corner and the walk
// resumes from there. spec.md §4.3 step 5.
func initialCorners(pts []Point) []int {
	n := len(pts)
	total := pathLength(pts)
	if total == 0 {
		return endpointsOnly(n)
	}

	corners := []int{0}
	last := 0
	for i := 1; i < n-1; i++ {
		if pointDist(pts[last], pts[i])/total > threshY {
			corners = append(corners, i-1)
			last = i - 1
		}
	}
	corners = append(corners, n-1)
	return dedupeInts(corners)
}

// neighborhoodRadius returns the point-count window corresponding to
// threshZ's fraction of the stroke's total path length.
func neighborhoodRadius(pts []Point) int {
	total := pathLength(pts)
	target := total * threshZ

	acc := 0.0
	for i := 1; i < len(pts); i++ {
		acc += pointDist(pts[i-1], pts[i])
		if acc >= target {
			return i
		}
	}
	return len(pts) - 1
}

func pointDist(a, b Point) float64 {
	dx := a.P.Vec().X - b.P.Vec().X
	dy := a.P.Vec().Y - b.P.Vec().Y
	return math.Hypot(dx, dy)
}

// mergeCorners collapses any two corners whose point-index separation falls
// within the neighborhood radius, keeping whichever has the higher
// curvature magnitude. Endpoints are never merged away.
func mergeCorners(pts []Point, corners []int) []int {
	if len(corners) <= 2 {
		return corners
	}
	radius := neighborhoodRadius(pts)

	out := []int{corners[0]}
	for i := 1; i < len(corners); i++ {
		c := corners[i]
		last := out[len(out)-1]

		isEndpoint := c == len(pts)-1
		if !isEndpoint && c-last <= radius && last != 0 {
			if math.Abs(pts[c].Curv) > math.Abs(pts[last].Curv) {
				out[len(out)-1] = c
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

// replaceCorners moves each interior corner to the point of highest
// curvature within its neighborhood, snapping detection onto the true
// extremum instead of wherever the initial pass happened to fire.
func replaceCorners(pts []Point, corners []int) []int {
	if len(corners) <= 2 {
		return corners
	}
	radius := neighborhoodRadius(pts)
	n := len(pts)

	out := make([]int, len(corners))
	out[0] = corners[0]
	out[len(corners)-1] = corners[len(corners)-1]

	for i := 1; i < len(corners)-1; i++ {
		c := corners[i]
		lo, hi := c-radius, c+radius
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}

		best := c
		for j := lo; j <= hi; j++ {
			if math.Abs(pts[j].Curv) > math.Abs(pts[best].Curv) {
				best = j
			}
		}
		out[i] = best
	}
	return dedupeInts(out)
}

func dedupeInts(xs []int) []int {
	out := xs[:0:0]
	for i, x := range xs {
		if i > 0 && x <= out[len(out)-1] {
			continue
		}
		out = append(out, x)
	}
	return out
}

func sameCorners(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
