package dollarp

import (
	"math"

	"github.com/strokerec/strokerec/geom"
)

// cloudDistance matches each point of a (in cyclic order starting at
// start) to the nearest not-yet-matched point of b, weighting each match by
// how close its position is to start — matches made early in the cycle
// count more. The weight is a proper linear decrease from 1 down to
// (1/n), computed as a float division so it actually decreases smoothly
// instead of truncating to a step function.
func cloudDistance(a, b []geom.Vec, start int) float64 {
	n := len(a)
	matched := make([]bool, n)

	sum := 0.0
	for i := 0; i < n; i++ {
		idx := (start + i) % n

		best := -1
		bestDist := 0.0
		for j := 0; j < n; j++ {
			if matched[j] {
				continue
			}
			d := geom.Dist(a[idx], b[j])
			if best < 0 || d < bestDist {
				best = j
				bestDist = d
			}
		}
		matched[best] = true

		weight := 1 - float64((idx-start+n)%n)/float64(n)
		sum += weight * bestDist
	}
	return sum
}

// greedyCloudMatch is the symmetric minimum of cloudDistance over a sample
// of cyclic starting points, in both point-cloud directions. The minimum is
// accumulated across every sampled start (not just the last one tried):
// dropping earlier candidates would silently make the match depend on
// sampling order.
func greedyCloudMatch(a, b []geom.Vec, epsilon float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}

	step := int(math.Pow(float64(n), 1-epsilon))
	if step < 1 {
		step = 1
	}

	min := -1.0
	for i := 0; i < n; i += step {
		d1 := cloudDistance(a, b, i)
		d2 := cloudDistance(b, a, i)

		if min < 0 || d1 < min {
			min = d1
		}
		if d2 < min {
			min = d2
		}
	}
	return min
}
