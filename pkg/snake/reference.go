package snake

import "github.com/mesh-intelligence/snakecube/pkg/geom"

// ReferenceChain is the step encoding of the classic 3x3x3 snake cube: one
// entry per straight slice, giving the steps the head advances along it.
// Together with the starting cell the slices cover all 27 cube cells.
var ReferenceChain = []int{2, 1, 1, 2, 1, 2, 1, 1, 2, 2, 1, 1, 1, 2, 2, 2, 2}

// ReferenceCubeSize is the edge length of the reference puzzle's cube.
const ReferenceCubeSize = 3

// ReferenceHeads returns the starting heads worth searching for the
// reference puzzle: one cell per symmetry class of the cube (corner, edge,
// face, center) with a representative direction, matching the classic
// demonstration set.
func ReferenceHeads() []Head {
	return []Head{
		NewHead(geom.NewVec3(0, 0, 0), geom.UnitX),
		NewHead(geom.NewVec3(1, 0, 0), geom.UnitX),
		NewHead(geom.NewVec3(1, 0, 0), geom.UnitY),
		NewHead(geom.NewVec3(1, 1, 0), geom.UnitX),
		NewHead(geom.NewVec3(1, 1, 0), geom.UnitZ),
		NewHead(geom.NewVec3(1, 1, 1), geom.UnitX),
	}
}
