package types

import (
	"errors"
	"time"
)

// Puzzle validation errors.
var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidChain    = errors.New("chain must be non-empty with positive slice lengths")
	ErrInvalidCubeSize = errors.New("cube size must be positive")
	ErrChainTooLong    = errors.New("chain needs more cells than the cube holds")
)

// Puzzle describes one snake cube: the chain of slice lengths and the edge
// length of the cube it must fill.
type Puzzle struct {
	PuzzleID  string    `json:"puzzle_id"` // UUID v7, generated on creation.
	Name      string    `json:"name"`      // Human-readable name (required, non-empty).
	Chain     []int     `json:"chain"`     // Step count per slice; single-slice chains give total cells.
	CubeSize  int       `json:"cube_size"` // Cube edge length.
	CreatedAt time.Time `json:"created_at"`
}

// Cells returns the number of cube cells the chain occupies: the starting
// cell plus one per step. A single-slice chain's entry already counts its
// cells.
func (p *Puzzle) Cells() int {
	if len(p.Chain) == 1 {
		return p.Chain[0]
	}
	total := 1
	for _, steps := range p.Chain {
		total += steps
	}
	return total
}

// Validate checks the solver's input preconditions: a non-empty name, a
// non-empty chain of positive slice lengths, a positive cube size, and a
// chain that does not need more cells than the cube holds. The solver core
// assumes these hold and does not re-check them.
func (p *Puzzle) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if len(p.Chain) == 0 {
		return ErrInvalidChain
	}
	for _, steps := range p.Chain {
		if steps <= 0 {
			return ErrInvalidChain
		}
	}
	if p.CubeSize <= 0 {
		return ErrInvalidCubeSize
	}
	if p.Cells() > p.CubeSize*p.CubeSize*p.CubeSize {
		return ErrChainTooLong
	}
	return nil
}
