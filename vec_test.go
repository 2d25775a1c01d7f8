package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 0.5, 2}

	assert.Equal(t, Vec3{-3, 2.5, 5}, a.Plus(b))
	assert.Equal(t, Vec3{5, 1.5, 1}, a.Minus(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Times(2))
	assert.Equal(t, Vec3{-5, -1.5, -1}, a.To(b))

	// Add mutates in place, Plus doesn't.
	a.Add(b)
	assert.Equal(t, Vec3{-3, 2.5, 5}, a)
}

func TestVec3Len(t *testing.T) {
	assert.Equal(t, 0.0, Vec3{}.Len())
	assert.Equal(t, 25.0, Vec3{3, 4, 0}.SquaredLen())
	assert.Equal(t, 5.0, Vec3{3, 0, 4}.Len())
}
