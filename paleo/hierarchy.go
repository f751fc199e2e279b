package paleo

// interpretation is one entry in the ordered list the hierarchy builds:
// a candidate shape plus the step that produced it.
type interpretation struct {
	shape Shape
	step  int
}

// resolve runs the fixed 15-step priority hierarchy over an enriched
// stroke, building an ordered interpretation list with add-once discipline:
// a shape type is added the first time some step recognizes it and never
// again, whether that step appends it (ENQ) or inserts it at the front
// (PUSH). The first entry is the classification; step 15 appends a
// poly-line through the stroke's corners unless an earlier step already
// added a poly-line, so the list is never empty.
// spec.md §4.6.
func resolve(e *EnrichedStroke) []interpretation {
	var list []interpretation
	seen := make(map[Type]bool)

	enq := func(shape Shape, step int) {
		if seen[shape.Type] {
			return
		}
		seen[shape.Type] = true
		list = append(list, interpretation{shape: shape, step: step})
	}
	push := func(shape Shape, step int) {
		if seen[shape.Type] {
			return
		}
		seen[shape.Type] = true
		list = append([]interpretation{{shape: shape, step: step}}, list...)
	}
	top := func() (Shape, bool) {
		if len(list) == 0 {
			return Shape{}, false
		}
		return list[0].shape, true
	}

	lineR := testLine(e)
	circleR := testCircle(e)
	ellipseR := testEllipse(e)
	arcR := testArc(e)
	curveR := testCurve(e)
	spiralR := testSpiral(e)
	helixR := testHelix(e)
	polyR := testPolyLine(e)
	compositeR := testComposite(e)

	seg0FA, seg0OK := firstSubSegmentFA(e)
	plainPoly := Shape{Type: TypePolyLine, PolyLine: &PolyLine{Points: e.cornerStrokePoints()}}

	// Step 1: an unambiguous line always wins outright.
	if lineR.Possible {
		enq(lineR.Shape, 1)
	}

	// Step 2: an arc whose feature area beats the first corner-pair
	// segment's own line fit outranks that segment read as a poly-line.
	if arcR.Possible && seg0OK && arcR.FA < seg0FA {
		enq(arcR.Shape, 2)
	}

	// Step 3: a high-DCR, low-corner-count stroke is a poly-line
	// regardless of its strict average-LSE bound; otherwise poly-line only
	// qualifies when every one of its sub-segments passed the line test on
	// its own, which is exactly what polyR.Possible already requires.
	if e.DCR > threshW && len(e.Corners) < threshX {
		enq(plainPoly, 3)
	} else if polyR.Possible {
		enq(polyR.Shape, 3)
	}

	// Step 4: a circle whose feature area beats the first segment's line
	// fit, with the poly-line read enqueued ahead of it when the poly-line
	// itself is no more complex than a circle.
	if !e.Overtraced && circleR.Possible && seg0OK && circleR.FA < seg0FA {
		if circleR.Shape.Circle.R >= threshN && polyR.Possible && rank(polyR.Shape) <= rankCircle {
			enq(polyR.Shape, 4)
		}
		enq(circleR.Shape, 4)
	}

	// Step 5: same trade-off for ellipse, which also re-offers circle as an
	// alternative immediately after.
	if !e.Overtraced && ellipseR.Possible && seg0OK && ellipseR.FA < seg0FA {
		if ellipseR.Shape.Ellipse.Maj*2 >= threshL && polyR.Possible && rank(polyR.Shape) <= rankEllipse {
			enq(polyR.Shape, 5)
		}
		enq(ellipseR.Shape, 5)
		if circleR.Possible {
			enq(circleR.Shape, 5)
		}
	}

	// Step 6: arc (default).
	if arcR.Possible {
		enq(arcR.Shape, 6)
	}

	// Step 7: an overtraced stroke with a possible spiral fit is preferred
	// at this point over waiting for the later curve/poly-line fallbacks.
	if e.Overtraced && spiralR.Possible {
		enq(spiralR.Shape, 7)
	}

	// Step 8: circle (default).
	if circleR.Possible {
		enq(circleR.Shape, 8)
	}

	// Step 9: ellipse (default).
	if ellipseR.Possible {
		enq(ellipseR.Shape, 9)
	}

	// Step 10: a composite more elaborate than a helix loses to reading it
	// as a helix outright.
	if compositeR.Possible && helixR.Possible && rankHelix < rank(compositeR.Shape) {
		enq(helixR.Shape, 10)
	}

	// Step 11: Bézier curve (default).
	if curveR.Possible {
		enq(curveR.Shape, 11)
	}

	// Step 12: spiral, if step 7 didn't already claim it.
	if spiralR.Possible {
		enq(spiralR.Shape, 12)
	}

	// Step 13: poly-line (default).
	if polyR.Possible {
		enq(polyR.Shape, 13)
	}

	// Step 14: once nothing ranks above a curve or poly-line (or nothing
	// has matched at all), a composite interpretation gets to compete:
	// an all-lines composite degenerates to a plain poly-line, a composite
	// simpler than the current top gets pushed ahead of it, and any other
	// composite is enqueued behind it.
	topShape, hasTop := top()
	if !hasTop || topShape.Type == TypeCurve || topShape.Type == TypePolyLine {
		if compositeR.Possible {
			switch {
			case isAllLines(compositeR.Shape.Composite):
				enq(plainPoly, 14)
			case hasTop && rank(compositeR.Shape) < rank(topShape):
				push(compositeR.Shape, 14)
			default:
				enq(compositeR.Shape, 14)
			}
		}
	}

	// Step 15: default. A poly-line through the stroke's corners always
	// exists and is appended last if nothing claimed PolyLine yet.
	enq(plainPoly, 15)

	return list
}
