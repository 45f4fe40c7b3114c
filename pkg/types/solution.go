package types

import (
	"time"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
)

// PathPoint is one head snapshot of a stored solution: the first cell of a
// slice and the direction the slice runs in.
type PathPoint struct {
	Pos geom.Vec3 `json:"pos"`
	Dir geom.Vec3 `json:"dir"`
}

// Solution is one stored folding of a puzzle chain: a full-length ordered
// sequence of head snapshots, kept in the order the solver discovered it.
type Solution struct {
	SolutionID string      `json:"solution_id"` // UUID v7, generated on creation.
	RunID      string      `json:"run_id"`
	Ordinal    int         `json:"ordinal"` // Discovery order within the run, from 0.
	Path       []PathPoint `json:"path"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Positions returns the ordered base positions of the solution's path, the
// shape the demonstration driver prints and compares.
func (s *Solution) Positions() []geom.Vec3 {
	out := make([]geom.Vec3, len(s.Path))
	for i, p := range s.Path {
		out[i] = p.Pos
	}
	return out
}
