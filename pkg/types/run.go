package types

import (
	"errors"
	"time"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
)

// Solve run validation errors.
var (
	ErrInvalidStart     = errors.New("start position outside the cube")
	ErrInvalidDirection = errors.New("start direction is not a unit direction")
)

// SolveRun records one invocation of the solver: which puzzle, from which
// starting head, and how many solutions it produced.
type SolveRun struct {
	RunID         string    `json:"run_id"`  // UUID v7, generated on creation.
	PuzzleID      string    `json:"puzzle_id"`
	StartPos      geom.Vec3 `json:"start_pos"`
	StartDir      geom.Vec3 `json:"start_dir"`
	SolutionCount int       `json:"solution_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidateStart checks that the run's starting head is legal for the given
// puzzle: the position lies inside the cube and the direction is one of the
// six axis-aligned unit directions.
func (r *SolveRun) ValidateStart(p *Puzzle) error {
	for _, comp := range r.StartPos.Slice() {
		if comp < 0 || comp >= p.CubeSize {
			return ErrInvalidStart
		}
	}
	for _, dir := range geom.BaseDirections {
		if r.StartDir == dir {
			return nil
		}
	}
	return ErrInvalidDirection
}
