package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsGeneral = 1e-6

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(3, 3, 3), b.Sub(a))
	assert.Equal(t, NewVec3(2, 4, 6), a.Scale(2))
}

func TestVec3VolumeAndArea(t *testing.T) {
	dims := NewVec3(10, 20, 30)
	assert.InDelta(t, 6000.0, dims.Volume(), epsGeneral)
	assert.InDelta(t, 200.0, dims.BaseArea(), epsGeneral)
}

func TestVec3FitsWithin(t *testing.T) {
	small := NewVec3(5, 5, 5)
	large := NewVec3(10, 10, 10)

	assert.True(t, small.FitsWithin(large, epsGeneral))
	assert.False(t, large.FitsWithin(small, epsGeneral))
}

func TestIsValidDimension(t *testing.T) {
	assert.True(t, NewVec3(1, 1, 1).IsValidDimension(epsGeneral))
	assert.False(t, NewVec3(0, 1, 1).IsValidDimension(epsGeneral))
	assert.False(t, NewVec3(-1, 1, 1).IsValidDimension(epsGeneral))
}

func TestIntersects(t *testing.T) {
	a := NewAABBFromOrigin(Zero(), NewVec3(10, 10, 10))
	b := NewAABBFromOrigin(NewVec3(5, 5, 5), NewVec3(10, 10, 10))
	c := NewAABBFromOrigin(NewVec3(20, 20, 20), NewVec3(10, 10, 10))

	assert.True(t, Intersects(a, b, epsGeneral))
	assert.False(t, Intersects(a, c, epsGeneral))
}

func TestIntersectsTouchingFacesDoNotCollide(t *testing.T) {
	a := NewAABBFromOrigin(Zero(), NewVec3(10, 10, 10))
	b := NewAABBFromOrigin(NewVec3(10, 0, 0), NewVec3(10, 10, 10))

	assert.False(t, Intersects(a, b, epsGeneral))
}

func TestOverlap1D(t *testing.T) {
	assert.InDelta(t, 2.0, Overlap1D(0, 5, 3, 8), epsGeneral)
	assert.InDelta(t, 0.0, Overlap1D(0, 3, 5, 8), epsGeneral)
	assert.InDelta(t, 6.0, Overlap1D(0, 10, 2, 8), epsGeneral)
}

func TestOverlapAreaXY(t *testing.T) {
	a := NewAABBFromOrigin(Zero(), NewVec3(10, 10, 10))
	b := NewAABBFromOrigin(NewVec3(5, 5, 0), NewVec3(10, 10, 10))

	assert.InDelta(t, 25.0, OverlapAreaXY(a, b), epsGeneral)
}

func TestPointInside(t *testing.T) {
	box := NewAABBFromOrigin(Zero(), NewVec3(10, 10, 10))
	assert.True(t, PointInside(NewVec3(5, 5, 5), box))
	assert.False(t, PointInside(NewVec3(15, 5, 5), box))
}

func TestWithinBounds(t *testing.T) {
	bound := NewVec3(100, 100, 70)
	inside := NewAABBFromOrigin(NewVec3(70, 70, 60), NewVec3(30, 30, 10))
	outside := NewAABBFromOrigin(NewVec3(80, 0, 0), NewVec3(30, 30, 10))

	assert.True(t, WithinBounds(inside, bound, epsGeneral))
	assert.False(t, WithinBounds(outside, bound, epsGeneral))
}

func TestCenterOfMassAccumulator(t *testing.T) {
	var acc CenterOfMassAccumulator
	acc.Add(0, 0, 10)
	acc.Add(10, 0, 10)

	x, y, ok := acc.Compute(epsGeneral)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, x, epsGeneral)
	assert.InDelta(t, 0.0, y, epsGeneral)
}

func TestCenterOfMassAccumulatorEmpty(t *testing.T) {
	var acc CenterOfMassAccumulator
	_, _, ok := acc.Compute(epsGeneral)
	assert.False(t, ok)
}
