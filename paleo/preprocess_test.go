package paleo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokerec/strokerec/strokemodel"
)

func straightStroke() *strokemodel.Stroke {
	s := strokemodel.New(10)
	for i := 0; i < 10; i++ {
		s.Append(i*10, 0, int64(i))
	}
	return s
}

func TestPreprocessDedupe(t *testing.T) {
	s := strokemodel.New(4)
	s.Append(0, 0, 0)
	s.Append(0, 0, 0) // exact duplicate timestamp+position
	s.Append(1, 1, 1)

	e, err := Preprocess(s)
	require.NoError(t, err)
	assert.Equal(t, 2, len(e.Points))
}

func TestPreprocessTooShort(t *testing.T) {
	_, err := Preprocess(strokemodel.New(0))
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestDirectionUnwrapInvariant(t *testing.T) {
	e, err := Preprocess(straightStroke())
	require.NoError(t, err)

	for i := 1; i < len(e.Points)-1; i++ {
		diff := e.Points[i].Dir - e.Points[i-1].Dir
		assert.True(t, diff > -math.Pi && diff <= math.Pi, "diff %v out of range at %d", diff, i)
	}
}

func TestCornersAlwaysSpanStroke(t *testing.T) {
	e, err := Preprocess(straightStroke())
	require.NoError(t, err)

	require.NotEmpty(t, e.Corners)
	assert.Equal(t, 0, e.Corners[0])
	assert.Equal(t, len(e.Points)-1, e.Corners[len(e.Corners)-1])
	for i := 1; i < len(e.Corners); i++ {
		assert.Greater(t, e.Corners[i], e.Corners[i-1])
	}
}

func TestPxLengthMatchesPath(t *testing.T) {
	e, err := Preprocess(straightStroke())
	require.NoError(t, err)
	assert.InDelta(t, 90.0, e.PxLength, 1e-6)
}
