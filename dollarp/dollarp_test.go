package dollarp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokerec/strokerec/strokemodel"
)

func diagonalStroke() *strokemodel.Stroke {
	s := strokemodel.New(5)
	s.Append(0, 0, 0)
	s.Append(10, 10, 1)
	s.Append(20, 20, 2)
	s.Append(30, 30, 3)
	return s
}

func TestResampleProducesExactlyN(t *testing.T) {
	pts := Resample(diagonalStroke(), 16)
	assert.Len(t, pts, 16)
}

func TestResampleIdempotentOnAlreadyResampled(t *testing.T) {
	first := Resample(diagonalStroke(), 16)

	s := strokemodel.New(len(first))
	for _, p := range first {
		s.Append(int(p.X), int(p.Y), 0)
	}
	second := Resample(s, 16)

	require.Len(t, second, 16)
	for i := range first {
		assert.InDelta(t, first[i].X, second[i].X, 1.0)
		assert.InDelta(t, first[i].Y, second[i].Y, 1.0)
	}
}

func TestNormalizeBoundsAndCentroid(t *testing.T) {
	pts := Normalize(diagonalStroke(), DefaultN)
	require.Len(t, pts, DefaultN)

	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))
	assert.InDelta(t, 0, cx, 1e-6)
	assert.InDelta(t, 0, cy, 1e-6)

	for _, p := range pts {
		assert.LessOrEqual(t, math.Abs(p.X), 1.0)
		assert.LessOrEqual(t, math.Abs(p.Y), 1.0)
	}
}

func TestRecognizeMatchesIdenticalTemplate(t *testing.T) {
	ctx := NewContext()
	ctx.AddTemplate("diagonal", diagonalStroke())

	best, all, err := ctx.Recognize(diagonalStroke())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "diagonal", best.Name)
	assert.InDelta(t, 0, best.Distance, 1e-6)
	assert.InDelta(t, 1, best.Score, 1e-6)
}

func TestRecognizeNoTemplates(t *testing.T) {
	ctx := NewContext()
	_, _, err := ctx.Recognize(diagonalStroke())
	assert.ErrorIs(t, err, ErrNoTemplates)
}

func TestCloudDistanceSelfIsZero(t *testing.T) {
	a := Normalize(diagonalStroke(), 8)
	d := cloudDistance(a, a, 0)
	assert.InDelta(t, 0, d, 1e-9)
}
