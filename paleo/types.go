package paleo

import (
	"github.com/strokerec/strokerec/geom"
	"github.com/strokerec/strokerec/strokemodel"
)

// Type identifies one of the shape kinds PaleoSketch can recognize.
type Type int

// The Type constants are prefixed (TypeLine, not Line) because the shape
// record types below are named Line, Circle, and so on; Go's single
// package-level namespace means the unprefixed names can't be reused.
const (
	// TypeUnrun marks a hierarchy slot that has not been filled yet.
	TypeUnrun Type = iota
	TypeLine
	TypePolyLine
	TypeCircle
	TypeEllipse
	TypeArc
	TypeCurve
	TypeSpiral
	TypeHelix
	TypeComposite

	numTypes = int(TypeComposite) + 1
)

func (t Type) String() string {
	switch t {
	case TypeLine:
		return "LINE"
	case TypePolyLine:
		return "POLYLINE"
	case TypeCircle:
		return "CIRCLE"
	case TypeEllipse:
		return "ELLIPSE"
	case TypeArc:
		return "ARC"
	case TypeCurve:
		return "CURVE"
	case TypeSpiral:
		return "SPIRAL"
	case TypeHelix:
		return "HELIX"
	case TypeComposite:
		return "COMPOSITE"
	default:
		return "UNRUN"
	}
}

// Point is a stroke sample annotated with the per-point features the
// recognizer battery depends on: direction, speed, curvature, and dy/dx
// (spec.md §3 "Enriched stroke").
type Point struct {
	P     strokemodel.Point
	Dir   float64
	Speed float64
	Curv  float64
	DyDx  float64
}

// Shape records hold fitted parameters for a single shape kind, per
// spec.md §3 "Shape records". They are plain value types — the redesign
// spec.md §9 calls for in place of the original's tagged-union-of-pointers.

// Line is a straight segment between two endpoints, each the projection of
// the stroke's first/last sample onto the fitted line rather than the raw
// sample itself (spec.md §4.5 "Line segment").
type Line struct {
	P0, P1 geom.Vec
}

// PolyLine is a sequence of straight segments through corner points.
type PolyLine struct {
	Points []strokemodel.Point
}

// Circle is a center and radius.
type Circle struct {
	C geom.Vec
	R float64
}

// Ellipse is a center plus major/minor axis endpoints and half-lengths.
type Ellipse struct {
	C              geom.Vec
	MajorA, MajorB geom.Vec
	MinorA, MinorB geom.Vec
	Maj, Min       float64
}

// Arc is a circular arc: center, radius, angular span, and winding.
type Arc struct {
	C              geom.Vec
	R              float64
	Theta0, Theta1 float64
	CW             bool
}

// Curve is a cubic Bézier's four control points.
type Curve struct {
	Control [4]geom.Vec
}

// Spiral is a center, nominal radius, angular span/final angle, and winding
// sign (+1 counterclockwise, -1 clockwise).
type Spiral struct {
	C      geom.Vec
	R      float64
	ThetaT float64
	ThetaF float64
	CW     int
}

// Helix is a spiral that does not close back near its start; same shape.
type Helix = Spiral

// Composite is a recursive decomposition of the stroke into sub-shapes
// delimited by corners.
type Composite struct {
	Sub []Shape
}

// Shape is the sum type every tester, and the hierarchy, passes around.
// Exactly one of the fields is meaningful, selected by Type.
type Shape struct {
	Type      Type
	Line      *Line
	PolyLine  *PolyLine
	Circle    *Circle
	Ellipse   *Ellipse
	Arc       *Arc
	Curve     *Curve
	Spiral    *Spiral
	Helix     *Helix
	Composite *Composite
}

// TestResult is the common envelope every shape tester returns
// (spec.md §3 "Test result"): whether the shape is possible, an optional
// human-readable failure reason, and the two error metrics most testers
// compute (feature area error and least-squares error) alongside the
// fitted shape itself.
type TestResult struct {
	Possible bool
	FailMsg  string
	FA       float64 // feature-area error
	LSE      float64
	Shape    Shape
}

func fail(r *TestResult, msg string) {
	r.Possible = false
	r.FailMsg = msg
}
