// Package dollarp implements the $P point-cloud gesture recognizer: strokes
// are resampled to a fixed number of points, normalized into a canonical
// frame, and matched against a library of templates by a greedy nearest-point
// cloud distance. See spec.md §4.7.
package dollarp

import (
	"github.com/strokerec/strokerec/geom"
	"github.com/strokerec/strokerec/strokemodel"
)

// DefaultN is the point count templates and candidate strokes are resampled
// to before matching.
const DefaultN = 32

// DefaultEpsilon controls the greedy match's start-index sampling step:
// step = floor(n^(1-epsilon)). Lower epsilon samples more starts (slower,
// more accurate); the $P paper's own default is 0.5.
const DefaultEpsilon = 0.5

// Template is a named point cloud a candidate stroke is compared against.
type Template struct {
	Name   string
	Points []geom.Vec
}

// Context holds a template library plus the resample/match parameters used
// to recognize against it. Create with NewContext and reuse across
// Recognize calls; it is not safe for concurrent use.
type Context struct {
	Templates []Template
	N         int
	Epsilon   float64
}

// NewContext returns a ready-to-use Context with the package defaults.
func NewContext() *Context {
	return &Context{N: DefaultN, Epsilon: DefaultEpsilon}
}

// SetEpsilon overrides the greedy match's start-sampling parameter.
func (c *Context) SetEpsilon(eps float64) {
	c.Epsilon = eps
}

// AddTemplate normalizes s and stores it under name for future Recognize
// calls.
func (c *Context) AddTemplate(name string, s *strokemodel.Stroke) {
	c.Templates = append(c.Templates, Template{Name: name, Points: Normalize(s, c.N)})
}

// Normalize resamples s to n points, scales it into [0,1]² preserving
// aspect ratio, and translates its centroid to the origin. spec.md §4.7
// "Normalize".
func Normalize(s *strokemodel.Stroke, n int) []geom.Vec {
	resampled := Resample(s, n)
	return translateToCentroid(scaleToUnit(resampled))
}

// Resample walks s and emits an interpolated point each time the distance
// walked since the previous emitted point reaches (path length)/(n-1); each
// emitted point becomes the start of the next segment, so the path is split
// into n-1 equal-length intervals, yielding n points total. Emitted points
// keep floating-point coordinates; s is not modified.
func Resample(s *strokemodel.Stroke, n int) []geom.Vec {
	clone := s.Clone()
	total := clone.Length()
	if total == 0 || clone.Len() == 0 {
		pts := clone.Points()
		out := make([]geom.Vec, 0, len(pts))
		for _, p := range pts {
			out = append(out, p.Vec())
		}
		return padOrTrim(out, n)
	}

	interval := total / float64(n-1)
	d := 0.0
	i := 1
	pts := clone.Points()
	prev := pts[0].Vec()
	out := []geom.Vec{prev}
	for i < len(pts) {
		b := pts[i].Vec()
		segDist := geom.Dist(prev, b)

		if segDist == 0 {
			i++
			continue
		}

		if d+segDist >= interval {
			t := (interval - d) / segDist
			q := geom.Vec{X: prev.X + t*(b.X-prev.X), Y: prev.Y + t*(b.Y-prev.Y)}
			out = append(out, q)
			prev = q
			d = 0
			continue
		}
		d += segDist
		prev = b
		i++
	}
	if len(out) < n {
		out = append(out, pts[len(pts)-1].Vec())
	}
	return padOrTrim(out, n)
}

// padOrTrim forces pts to exactly n entries: resampling's interpolation can
// over- or undershoot n by one point at the tail due to floating-point
// rounding in the interval arithmetic.
func padOrTrim(pts []geom.Vec, n int) []geom.Vec {
	if len(pts) == n {
		return pts
	}
	if len(pts) > n {
		return pts[:n]
	}
	out := make([]geom.Vec, n)
	copy(out, pts)
	last := pts[len(pts)-1]
	for i := len(pts); i < n; i++ {
		out[i] = last
	}
	return out
}

// scaleToUnit translates pts by minus their bounding box's minimum corner and
// scales them so the box's longer side is 1, keeping aspect ratio fixed.
func scaleToUnit(pts []geom.Vec) []geom.Vec {
	if len(pts) == 0 {
		return pts
	}
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

	w, h := maxX-minX, maxY-minY
	side := w
	if h > side {
		side = h
	}
	if side == 0 {
		return pts
	}

	out := make([]geom.Vec, len(pts))
	for i, p := range pts {
		out[i] = geom.Vec{X: (p.X - minX) / side, Y: (p.Y - minY) / side}
	}
	return out
}

// translateToCentroid shifts pts so their centroid sits at the origin.
func translateToCentroid(pts []geom.Vec) []geom.Vec {
	if len(pts) == 0 {
		return pts
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	out := make([]geom.Vec, len(pts))
	for i, p := range pts {
		out[i] = geom.Vec{X: p.X - cx, Y: p.Y - cy}
	}
	return out
}
