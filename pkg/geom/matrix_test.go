package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat3Apply(t *testing.T) {
	identity := Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	v := NewVec3(2, -3, 5)
	assert.Equal(t, v, identity.Apply(v))
}

func TestRotationMatrices(t *testing.T) {
	tests := []struct {
		name string
		rot  Mat3
		in   Vec3
		want Vec3
	}{
		{"x rotates y to z", RotX, UnitY, UnitZ},
		{"x rotates z to -y", RotX, UnitZ, UnitY.Neg()},
		{"y rotates z to x", RotY, UnitZ, UnitX},
		{"y rotates x to -z", RotY, UnitX, UnitZ.Neg()},
		{"z rotates x to y", RotZ, UnitX, UnitY},
		{"z rotates y to -x", RotZ, UnitY, UnitX.Neg()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rot.Apply(tt.in))
		})
	}
}

// Four quarter turns about any axis are the identity on every direction.
func TestRotationPeriod(t *testing.T) {
	for _, rot := range []Mat3{RotX, RotY, RotZ} {
		for _, d := range BaseDirections {
			v := d
			for i := 0; i < 4; i++ {
				v = rot.Apply(v)
			}
			assert.Equal(t, d, v)
		}
	}
}

func TestMirrorMatrices(t *testing.T) {
	v := NewVec3(1, 2, 3)
	assert.Equal(t, NewVec3(-1, 2, 3), MirrorYZ.Apply(v))
	assert.Equal(t, NewVec3(1, -2, 3), MirrorZX.Apply(v))
	assert.Equal(t, NewVec3(1, 2, -3), MirrorXY.Apply(v))
}
