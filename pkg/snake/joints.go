package snake

import "github.com/mesh-intelligence/snakecube/pkg/geom"

// JointStates is the number of distinct orientations of the 90 degree
// dual-joint element. Rotation indices run in [0, JointStates).
const JointStates = 4

// jointDirections maps a head direction to the four perpendicular directions
// reachable at a 90 degree joint, ordered so that entry i+1 is entry i
// rotated a quarter turn about the key's axis. A direction and its inverse
// share the same candidate list: a joint entered from either end reaches the
// same orientations.
//
// Built once at startup and never mutated afterwards.
var jointDirections = makeJointDirections()

// axisRotations pairs each base vector with the rotation matrix about its axis.
var axisRotations = [3]geom.Mat3{geom.RotX, geom.RotY, geom.RotZ}

// makeJointDirections generates the joint transition table. For base vector
// i, candidate 0 is the cyclically following base vector (x -> y, y -> z,
// z -> x); each further candidate is the previous one rotated 90 degrees
// about axis i. Applying the rotation a fourth time reproduces candidate 0,
// which the table tests assert as a closure check.
func makeJointDirections() map[geom.Vec3][JointStates]geom.Vec3 {
	table := make(map[geom.Vec3][JointStates]geom.Vec3, 6)
	for i, axis := range geom.BaseVectors {
		rot := axisRotations[i]
		var candidates [JointStates]geom.Vec3
		candidates[0] = geom.BaseVectors[(i+1)%3]
		for j := 1; j < JointStates; j++ {
			candidates[j] = rot.Apply(candidates[j-1])
		}
		table[axis] = candidates
		table[axis.Neg()] = candidates
	}
	return table
}
