package paleo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokerec/strokerec/strokemodel"
)

func TestEngineRecognizesLine(t *testing.T) {
	s := strokemodel.New(20)
	for i := 0; i < 20; i++ {
		s.Append(i*5, i*5, int64(i))
	}

	eng := NewEngine()
	shape, err := eng.Recognize(s)
	require.NoError(t, err)
	assert.Equal(t, TypeLine, shape.Type)
	assert.Equal(t, TypeLine, eng.LastType())
}

func TestEngineRecognizesCircle(t *testing.T) {
	s := strokemodel.New(64)
	const radius = 50.0
	for i := 0; i < 64; i++ {
		theta := 2 * math.Pi * float64(i) / 64
		x := int(radius * math.Cos(theta))
		y := int(radius * math.Sin(theta))
		s.Append(x, y, int64(i))
	}

	eng := NewEngine()
	shape, err := eng.Recognize(s)
	require.NoError(t, err)
	assert.Contains(t, []Type{TypeCircle, TypeEllipse, TypePolyLine}, shape.Type)
	if shape.Type == TypeCircle {
		assert.InDelta(t, radius, shape.Circle.R, radius*0.5)
	}
}

func TestHierarchyAddOnceDiscipline(t *testing.T) {
	s := strokemodel.New(20)
	for i := 0; i < 20; i++ {
		s.Append(i*5, i*5, int64(i))
	}
	e, err := Preprocess(s)
	require.NoError(t, err)

	list := resolve(e)
	seen := map[Type]bool{}
	for _, it := range list {
		assert.False(t, seen[it.shape.Type], "type %v added more than once", it.shape.Type)
		seen[it.shape.Type] = true
	}
}

func TestHierarchyDefaultsToPolyLine(t *testing.T) {
	s := strokemodel.New(5)
	// A ragged zig-zag that should fail every specialized tester.
	s.Append(0, 0, 0)
	s.Append(5, 40, 1)
	s.Append(10, 2, 2)
	s.Append(15, 45, 3)
	s.Append(20, 0, 4)

	e, err := Preprocess(s)
	require.NoError(t, err)

	list := resolve(e)
	last := list[len(list)-1]
	assert.Equal(t, TypePolyLine, last.shape.Type)
}
