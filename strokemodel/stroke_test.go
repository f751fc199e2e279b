package strokemodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndLen(t *testing.T) {
	s := New(4)
	s.Append(0, 0, 0)
	s.Append(3, 4, 1)
	require.Equal(t, 2, s.Len())
	assert.InDelta(t, 5.0, s.Length(), 1e-9)
}

func TestFromPoints(t *testing.T) {
	s := FromPoints([][3]int64{{0, 0, 0}, {1, 0, 1}, {1, 1, 2}})
	require.Equal(t, 3, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, i, s.At(i).I)
	}
}

func TestInsertAtRenumbers(t *testing.T) {
	s := FromPoints([][3]int64{{0, 0, 0}, {10, 0, 1}})
	s.InsertAt(1, 5, 0)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, 5, s.At(1).X)
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, i, s.At(i).I)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := FromPoints([][3]int64{{0, 0, 0}, {1, 1, 1}})
	clone := s.Clone()
	clone.Append(9, 9, 9)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, clone.Len())
}
