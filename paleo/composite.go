package paleo

import "github.com/strokerec/strokerec/strokemodel"

// testComposite recursively decomposes the stroke into the segments its
// corners delimit and fits each with the line and arc testers
// (recognizeSegment), succeeding only when
// the stroke has more than two corners and at least one segment is not
// itself a clean line (otherwise poly-line already covers it, and poly-line
// ranks above composite in the hierarchy). spec.md §4.5 "Composite".
func testComposite(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if len(e.Corners) < 3 {
		fail(&r, "composite requires more than 2 corners")
		return r
	}

	var subs []Shape
	for i := 1; i < len(e.Corners); i++ {
		seg := segmentFromTo(e, e.Corners[i-1], e.Corners[i])
		subs = append(subs, recognizeSegment(seg))
	}

	composite := &Composite{Sub: subs}
	if isAllLines(composite) {
		fail(&r, "composite of all straight segments is a poly-line")
		return r
	}

	r.Shape = Shape{Type: TypeComposite, Composite: composite}
	return r
}

// segmentFromTo extracts the sub-stroke between two corner indices
// (inclusive), with its own local corner list covering just its endpoints.
func segmentFromTo(e *EnrichedStroke, from, to int) *EnrichedStroke {
	pts := make([]Point, to-from+1)
	copy(pts, e.Points[from:to+1])
	for i := range pts {
		pts[i].P.I = i
	}
	return &EnrichedStroke{
		Points:     pts,
		Corners:    []int{0, len(pts) - 1},
		PxLength:   pathLength(pts),
		NDDE:       e.NDDE,
		DCR:        e.DCR,
		TotRevs:    e.TotRevs,
		Overtraced: e.Overtraced,
		Closed:     e.Closed,
	}
}

// recognizeSegment fits a single segment with only the line and circular-arc
// testers, the two shapes short corner-delimited segments are most likely
// to be. Avoids recursing into testComposite itself.
func recognizeSegment(seg *EnrichedStroke) Shape {
	if lr := testLine(seg); lr.Possible {
		return lr.Shape
	}
	if ar := testArc(seg); ar.Possible {
		return ar.Shape
	}
	// Poly-line through the segment's own endpoints is the guaranteed
	// fallback, matching the hierarchy's own default.
	return Shape{Type: TypePolyLine, PolyLine: &PolyLine{
		Points: []strokemodel.Point{seg.Points[0].P, seg.Points[len(seg.Points)-1].P},
	}}
}

// rank returns a shape's position in the hierarchy's complexity ordering,
// used by composites to report how elaborate their most complex part is.
// Line and poly-line share the original's line_t representation and its
// rank formula (segment count), rather than a fixed constant like every
// other kind: a plain Line always has exactly 2 points, so its rank is
// always 1; a PolyLine's rank grows with its corner count.
func rank(s Shape) int {
	switch s.Type {
	case TypeLine:
		return 1
	case TypePolyLine:
		return len(s.PolyLine.Points) - 1
	case TypeCircle:
		return rankCircle
	case TypeEllipse:
		return rankEllipse
	case TypeArc:
		return rankArc
	case TypeCurve:
		return rankCurve
	case TypeSpiral:
		return rankSpiral
	case TypeHelix:
		return rankHelix
	case TypeComposite:
		max := 0
		for _, sub := range s.Composite.Sub {
			if rr := rank(sub); rr > max {
				max = rr
			}
		}
		return max + 1
	default:
		return 0
	}
}

// isAllLines reports whether every sub-shape of a composite is itself a
// line or poly-line, the condition under which the composite interpretation
// degenerates to a plain poly-line and should be dropped in its favor.
func isAllLines(c *Composite) bool {
	for _, sub := range c.Sub {
		if sub.Type != TypeLine && sub.Type != TypePolyLine {
			return false
		}
	}
	return true
}
