package paleo

import (
	"github.com/strokerec/strokerec/geom"
	"gonum.org/v1/gonum/mat"
)

// testCurve fits a cubic Bézier through the stroke by least squares,
// holding the endpoints fixed and solving for the two interior control
// points, then bounds the mean squared fit error. Requires DCR above
// threshJ. spec.md §4.5 "Bézier curve".
func testCurve(e *EnrichedStroke) TestResult {
	r := TestResult{Possible: true}

	if e.DCR < threshJ {
		fail(&r, "curve requires high DCR")
		return r
	}

	n := len(e.Points)
	if n < 4 {
		fail(&r, "curve requires at least 4 points")
		return r
	}

	p0 := e.Points[0].P.Vec()
	p3 := e.Points[n-1].P.Vec()
	ts := chordLengthParams(e.Points)

	a := mat.NewDense(n, 2, nil)
	rhsX := mat.NewVecDense(n, nil)
	rhsY := mat.NewVecDense(n, nil)
	for i, t := range ts {
		b0, b1, b2, b3 := bezierBasis(t)
		a.Set(i, 0, b1)
		a.Set(i, 1, b2)
		pv := e.Points[i].P.Vec()
		rhsX.SetVec(i, pv.X-b0*p0.X-b3*p3.X)
		rhsY.SetVec(i, pv.Y-b0*p0.Y-b3*p3.Y)
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)
	var atRhsX, atRhsY mat.VecDense
	atRhsX.MulVec(a.T(), rhsX)
	atRhsY.MulVec(a.T(), rhsY)

	var solX, solY mat.VecDense
	if err := solX.SolveVec(&ata, &atRhsX); err != nil {
		fail(&r, "curve fit: singular normal equations")
		return r
	}
	if err := solY.SolveVec(&ata, &atRhsY); err != nil {
		fail(&r, "curve fit: singular normal equations")
		return r
	}

	p1 := geom.Vec{X: solX.AtVec(0), Y: solY.AtVec(0)}
	p2 := geom.Vec{X: solX.AtVec(1), Y: solY.AtVec(1)}

	lse := 0.0
	for i, t := range ts {
		b0, b1, b2, b3 := bezierBasis(t)
		fit := geom.Vec{
			X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
			Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
		}
		d := geom.Dist(fit, e.Points[i].P.Vec())
		lse += d * d
	}
	lse /= float64(n)

	r.LSE = lse
	if r.LSE >= threshR {
		fail(&r, "curve LSE too high")
		return r
	}

	r.Shape = Shape{Type: TypeCurve, Curve: &Curve{Control: [4]geom.Vec{p0, p1, p2, p3}}}
	return r
}

func bezierBasis(t float64) (b0, b1, b2, b3 float64) {
	mt := 1 - t
	b0 = mt * mt * mt
	b1 = 3 * mt * mt * t
	b2 = 3 * mt * t * t
	b3 = t * t * t
	return
}

// chordLengthParams assigns each point a parameter in [0,1] proportional to
// its cumulative distance along the stroke, the standard parameterization
// for fitting a curve to an arbitrarily-spaced point sequence.
func chordLengthParams(pts []Point) []float64 {
	n := len(pts)
	ts := make([]float64, n)
	cum := make([]float64, n)
	for i := 1; i < n; i++ {
		cum[i] = cum[i-1] + geom.Dist(pts[i-1].P.Vec(), pts[i].P.Vec())
	}
	total := cum[n-1]
	if total == 0 {
		return ts
	}
	for i := range ts {
		ts[i] = cum[i] / total
	}
	return ts
}
