package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDist(t *testing.T) {
	assert.InDelta(t, 5.0, Dist(Vec{0, 0}, Vec{3, 4}), 1e-9)
	assert.Equal(t, 0.0, Dist(Vec{1, 1}, Vec{1, 1}))
}

func TestCross(t *testing.T) {
	assert.Equal(t, 1.0, Cross(Vec{1, 0}, Vec{0, 1}))
	assert.Equal(t, -1.0, Cross(Vec{0, 1}, Vec{1, 0}))
}

func TestTriangleArea(t *testing.T) {
	area := TriangleArea(Vec{0, 0}, Vec{4, 0}, Vec{0, 3})
	assert.InDelta(t, 6.0, area, 1e-9)
}

func TestQuadArea(t *testing.T) {
	area := QuadArea(Vec{0, 0}, Vec{2, 0}, Vec{2, 2}, Vec{0, 2})
	assert.InDelta(t, 4.0, area, 1e-9)
}

func TestSegSegIntersect(t *testing.T) {
	assert.True(t, SegSegIntersect(Vec{0, 0}, Vec{2, 2}, Vec{0, 2}, Vec{2, 0}))
	assert.False(t, SegSegIntersect(Vec{0, 0}, Vec{1, 0}, Vec{0, 1}, Vec{1, 1}))
}

func TestLineLineIntersection(t *testing.T) {
	p, ok := LineLineIntersection(Vec{0, 0}, Vec{2, 2}, Vec{0, 2}, Vec{2, 0})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-9)
	assert.InDelta(t, 1.0, p.Y, 1e-9)

	_, ok = LineLineIntersection(Vec{0, 0}, Vec{1, 0}, Vec{0, 1}, Vec{1, 1})
	assert.False(t, ok)
}

func TestSegLineIntersection(t *testing.T) {
	p, ok := SegLineIntersection(Vec{0, 0}, Vec{2, 0}, Vec{1, -1}, Vec{1, 1})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-9)

	_, ok = SegLineIntersection(Vec{0, 0}, Vec{2, 0}, Vec{5, -1}, Vec{5, 1})
	assert.False(t, ok)
}
