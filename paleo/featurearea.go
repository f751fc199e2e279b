package paleo

import (
	"math"

	"github.com/strokerec/strokerec/geom"
	"gonum.org/v1/gonum/floats"
)

// vecsOf extracts the plane coordinates of a point sequence, the common
// input every fitter and feature-area accumulator below works from.
func vecsOf(pts []Point) []geom.Vec {
	out := make([]geom.Vec, len(pts))
	for i, p := range pts {
		out[i] = p.P.Vec()
	}
	return out
}

// quadFeatureArea is the feature-area primitive spec.md §4.1/§4.5 builds
// every shape tester's FA on: the running sum of
// quad_area(proj_{i-1}, proj_i, p_{i-1}, p_i) across consecutive stroke
// points, where proj maps a stroke point onto the candidate shape's
// boundary. Every term is a sum of unsigned triangle areas, so the total is
// never negative and no terms cancel.
func quadFeatureArea(pts []geom.Vec, proj func(geom.Vec) geom.Vec) float64 {
	if len(pts) == 0 {
		return 0
	}
	terms := make([]float64, 0, len(pts)-1)
	prevProj := proj(pts[0])
	for i := 1; i < len(pts); i++ {
		curProj := proj(pts[i])
		terms = append(terms, geom.QuadArea(prevProj, curProj, pts[i-1], pts[i]))
		prevProj = curProj
	}
	return floats.Sum(terms)
}

// projectCircle returns the point on the circle (center, r) nearest p,
// radially. Degenerate only when p coincides with center, in which case any
// boundary point is as good as any other.
func projectCircle(center geom.Vec, r float64, p geom.Vec) geom.Vec {
	d := geom.Sub(p, center)
	norm := math.Hypot(d.X, d.Y)
	if norm == 0 {
		return geom.Vec{X: center.X + r, Y: center.Y}
	}
	return geom.Vec{X: center.X + d.X/norm*r, Y: center.Y + d.Y/norm*r}
}
