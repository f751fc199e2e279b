package paleo

import "github.com/strokerec/strokerec/strokemodel"

// EnrichedStroke is the output of Preprocess: a deduplicated point sequence
// carrying the per-point feature graphs and whole-stroke scalars every
// tester and the hierarchy consume (spec.md §3 "Enriched stroke").
type EnrichedStroke struct {
	Points []Point

	// Corners holds indices into Points, always including 0 and
	// len(Points)-1, strictly increasing. Indices, not pointers, per the
	// redesign in spec.md §9: trimming Points never leaves a corner
	// dangling, it just needs reindexing (handled by breakStroke).
	Corners []int

	PxLength   float64
	NDDE       float64
	DCR        float64
	TotRevs    float64
	Overtraced bool
	Closed     bool
}

// cornerStrokePoints returns the raw stroke points at the corner indices,
// for building PolyLine shapes.
func (e *EnrichedStroke) cornerStrokePoints() []strokemodel.Point {
	out := make([]strokemodel.Point, len(e.Corners))
	for i, idx := range e.Corners {
		out[i] = e.Points[idx].P
	}
	return out
}
