package geom

// Mat3 is a 3x3 matrix with integer entries, stored row-major.
type Mat3 [3][3]int

// Apply returns the matrix-vector product m*v.
func (m Mat3) Apply(v Vec3) Vec3 {
	s := v.Slice()
	out := make([]int, 3)
	for i, row := range m {
		for j, a := range row {
			out[i] += a * s[j]
		}
	}
	return FromSlice(out)
}

// Rotation matrices for a 90 degree rotation of base vectors about each axis.
var (
	RotX = Mat3{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	RotY = Mat3{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	RotZ = Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
)

// Mirror matrices for reflecting a vector at the yz, zx and xy planes.
var (
	MirrorYZ = Mat3{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	MirrorZX = Mat3{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	MirrorXY = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}
)
