// Package geom provides the integer lattice geometry used by the snake
// solver: 3-component integer vectors, the six axis-aligned unit directions,
// and the 3x3 integer rotation and mirror matrices.
package geom

// Vec3 is a 3D vector with integer components. Vec3 is a comparable value
// type; two vectors are equal exactly when their components are equal.
type Vec3 struct {
	X, Y, Z int
}

// NewVec3 creates a vector from its components.
func NewVec3(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns the vector scaled by k.
func (v Vec3) Scale(k int) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Neg returns the vector with all components negated.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Max returns the largest component.
func (v Vec3) Max() int {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}

// Min returns the smallest component.
func (v Vec3) Min() int {
	m := v.X
	if v.Y < m {
		m = v.Y
	}
	if v.Z < m {
		m = v.Z
	}
	return m
}

// Slice returns the components as a []int{x, y, z}.
func (v Vec3) Slice() []int { return []int{v.X, v.Y, v.Z} }

// FromSlice creates a vector from a slice of at least three components.
func FromSlice(s []int) Vec3 { return Vec3{s[0], s[1], s[2]} }

// The three cartesian unit vectors.
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// BaseVectors lists the three cartesian unit vectors.
var BaseVectors = [3]Vec3{UnitX, UnitY, UnitZ}

// BaseDirections lists the three cartesian unit vectors together with their
// inverses: every axis-aligned unit direction in 3D space.
var BaseDirections = [6]Vec3{
	UnitX, UnitY, UnitZ,
	{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
}
