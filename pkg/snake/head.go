package snake

import (
	"fmt"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
)

// Head is the cursor of the backtracking search: a position in the cube and
// the direction the head is facing. Heads are small value types; the solver
// snapshots them into paths by plain copy.
type Head struct {
	Pos geom.Vec3
	Dir geom.Vec3

	// prev holds the direction before the last ChangeDirection, the axis
	// RotateTo rotates about. Valid only when hasPrev is set.
	prev    geom.Vec3
	hasPrev bool
}

// NewHead creates a head at pos facing dir. dir must be one of the six
// axis-aligned unit directions.
func NewHead(pos, dir geom.Vec3) Head {
	return Head{Pos: pos, Dir: dir}
}

func (h Head) String() string {
	return fmt.Sprintf("Head(%v, %v)", h.Pos, h.Dir)
}

// Sign returns +1 if the nonzero component of the direction is positive and
// -1 otherwise. The solver uses it to pick the boundary comparison when
// scanning for free cells.
func (h Head) Sign() int {
	if h.Dir.Max() == 1 {
		return 1
	}
	return -1
}

// Move advances the position steps cells along the current direction. The
// caller is responsible for steps being non-negative and the move staying
// inside the cube; Move itself does not validate.
func (h *Head) Move(steps int) {
	h.Pos = h.Pos.Add(h.Dir.Scale(steps))
}

// ChangeDirection turns the head 90 degrees onto a fresh joint: the current
// direction is saved as the rotation axis and the direction becomes
// orientation 0 of that joint.
func (h *Head) ChangeDirection() {
	h.prev = h.Dir
	h.hasPrev = true
	h.Dir = jointDirections[h.prev][0]
}

// RotateTo sets the direction to the given orientation of the joint the head
// last turned on. state must be in [0, JointStates). Returns ErrUnrotatedHead
// if the head has never changed direction.
func (h *Head) RotateTo(state int) error {
	if !h.hasPrev {
		return ErrUnrotatedHead
	}
	h.Dir = jointDirections[h.prev][state]
	return nil
}
