// Package strokemodel implements the stroke data structure shared by both
// recognizer pipelines: an ordered, timestamped sequence of 2-D points with
// append/insert mutation. See spec.md §4.2.
package strokemodel

import "github.com/strokerec/strokerec/geom"

// Point is a single sample of a pen stroke. X and Y are integer device
// coordinates; T is a monotonic tick count (units are caller-defined but
// must be consistent within a stroke); I is this point's index within its
// parent Stroke.
type Point struct {
	X, Y int
	T    int64
	I    int
}

// Vec returns the point's coordinates as a geom.Vec for use with the
// geometry primitives.
func (p Point) Vec() geom.Vec {
	return geom.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Stroke is an ordered sequence of points. Indices are always dense
// [0..Len()), matching Point.I; mutating methods renumber affected points so
// this invariant never has to be checked by callers.
type Stroke struct {
	pts []Point
}

// New creates an empty stroke with the given initial capacity.
func New(capacity int) *Stroke {
	return &Stroke{pts: make([]Point, 0, capacity)}
}

// FromPoints builds a stroke from literal (x, y, t) samples, assigning dense
// indices in order. Useful for tests and for seeding $P templates.
func FromPoints(samples [][3]int64) *Stroke {
	s := New(len(samples))
	for _, p := range samples {
		s.Append(int(p[0]), int(p[1]), p[2])
	}
	return s
}

// Append adds a point at the end of the stroke with the given coordinates
// and timestamp.
func (s *Stroke) Append(x, y int, t int64) {
	s.pts = append(s.pts, Point{X: x, Y: y, T: t, I: len(s.pts)})
}

// InsertAt inserts a new point with the given coordinates at position i,
// shifting the tail right and renumbering every point from i onward. The
// inserted point's timestamp is left zero; callers that need a specific
// timestamp should set p.T after inserting.
//
// Because corners and templates reference points by value or by plain int
// index, never by pointer into pts, growing the backing slice here never
// dangles anything held by a caller.
func (s *Stroke) InsertAt(i, x, y int) {
	s.pts = append(s.pts, Point{})
	copy(s.pts[i+1:], s.pts[i:len(s.pts)-1])
	s.pts[i] = Point{X: x, Y: y, I: i}
	for j := i + 1; j < len(s.pts); j++ {
		s.pts[j].I = j
	}
}

// Len returns the number of points in the stroke.
func (s *Stroke) Len() int { return len(s.pts) }

// Points returns the stroke's points. The returned slice aliases the
// stroke's backing array and must not be retained past the next mutating
// call.
func (s *Stroke) Points() []Point { return s.pts }

// At returns the point at index i.
func (s *Stroke) At(i int) Point { return s.pts[i] }

// Clone returns a deep copy of the stroke.
func (s *Stroke) Clone() *Stroke {
	cp := make([]Point, len(s.pts))
	copy(cp, s.pts)
	return &Stroke{pts: cp}
}

// Length returns the total length of the polyline through the stroke's
// points (the sum of consecutive point distances).
func (s *Stroke) Length() float64 {
	total := 0.0
	for i := 1; i < len(s.pts); i++ {
		total += geom.Dist(s.pts[i-1].Vec(), s.pts[i].Vec())
	}
	return total
}
