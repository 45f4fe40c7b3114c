package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 0)

	assert.Equal(t, NewVec3(-3, 7, 3), a.Add(b))
	assert.Equal(t, NewVec3(5, -3, 3), a.Sub(b))
	assert.Equal(t, NewVec3(3, 6, 9), a.Scale(3))
	assert.Equal(t, NewVec3(0, 0, 0), a.Scale(0))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Neg())
}

func TestVec3Equality(t *testing.T) {
	assert.True(t, NewVec3(1, 2, 3) == NewVec3(1, 2, 3))
	assert.False(t, NewVec3(1, 2, 3) == NewVec3(3, 2, 1))
}

func TestVec3MinMax(t *testing.T) {
	v := NewVec3(-2, 7, 3)
	assert.Equal(t, 7, v.Max())
	assert.Equal(t, -2, v.Min())
}

func TestVec3SliceRoundTrip(t *testing.T) {
	v := NewVec3(4, -5, 6)
	assert.Equal(t, []int{4, -5, 6}, v.Slice())
	assert.Equal(t, v, FromSlice(v.Slice()))
}

func TestBaseDirections(t *testing.T) {
	seen := make(map[Vec3]bool)
	for _, d := range BaseDirections {
		// Exactly one component is +1 or -1.
		sum := 0
		for _, c := range d.Slice() {
			assert.Contains(t, []int{-1, 0, 1}, c)
			if c != 0 {
				sum++
			}
		}
		assert.Equal(t, 1, sum, "direction %v is not a unit direction", d)
		assert.False(t, seen[d], "direction %v duplicated", d)
		seen[d] = true
	}
}
