package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
)

func dot(a, b geom.Vec3) int {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func TestJointDirectionsKeys(t *testing.T) {
	require.Len(t, jointDirections, 6)
	for _, dir := range geom.BaseDirections {
		_, ok := jointDirections[dir]
		assert.True(t, ok, "missing key %v", dir)
	}
}

func TestJointDirectionsCandidates(t *testing.T) {
	for key, candidates := range jointDirections {
		seen := make(map[geom.Vec3]bool)
		for i, c := range candidates {
			assert.Equal(t, 0, dot(key, c), "candidate %d of %v not perpendicular", i, key)
			assert.False(t, seen[c], "candidate %d of %v duplicated", i, key)
			seen[c] = true
		}
	}
}

// Rotating candidate 0 four times about the key axis must come back to
// candidate 0: the table's generation rule is closed.
func TestJointDirectionsClosure(t *testing.T) {
	for i, axis := range geom.BaseVectors {
		rot := axisRotations[i]
		candidates := jointDirections[axis]
		v := candidates[0]
		for j := 0; j < JointStates; j++ {
			v = rot.Apply(v)
		}
		assert.Equal(t, candidates[0], v, "rotation about %v not closed", axis)
	}
}

func TestJointDirectionsSharedWithInverse(t *testing.T) {
	for _, axis := range geom.BaseVectors {
		assert.Equal(t, jointDirections[axis], jointDirections[axis.Neg()])
	}
}
