package snake

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
)

// Path is an ordered sequence of head snapshots, one per slice laid so far.
// A Path of full chain length is a solution: each snapshot's position is the
// first cell of a slice and its direction points along that slice.
type Path []Head

// cellKind tags the meaning of a cube cell.
type cellKind uint8

const (
	cellFree  cellKind = iota // untouched
	cellUsed                  // interior cell of a laid slice
	cellJoint                 // landing joint of the most recently laid slice
)

// cell is one cube grid entry. state is the rotation index tried at a joint
// and is meaningful only when kind is cellJoint; state >= JointStates means
// every orientation at that joint has been tried ("wrapped").
type cell struct {
	kind  cellKind
	state int
}

// Solver enumerates all foldings of a chain that fill a cube, starting from
// one head. It is an explicit state machine: the cube grid, the progress
// counter and the working path stack persist between advance calls, so the
// search suspends exactly where a solution was found and resumes from there.
//
// A Solver owns its grid and head exclusively and is not safe for concurrent
// use; independent starting heads get independent Solver instances.
type Solver struct {
	chain []int
	steps []int // lattice steps per slice, derived from chain
	size  int
	head  Head

	pos       int // index of the next slice to lay
	cube      []cell
	path      Path
	solutions []Path
	exhausted bool

	logger *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the solver's logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// New creates a solver for the given chain, cube edge length and starting
// head. A chain entry is the number of lattice steps of its slice (the cells
// it adds beyond the cell it starts from); a chain with a single slice and
// hence no joints instead gives the total cell count of the chain, so a
// chain of [1] is a single cell.
//
// Preconditions, not checked here (see types.Puzzle.Validate for callers
// that want checking): chain entries positive, cubesize positive, the start
// position inside the cube, the direction a unit direction, and the chain's
// cells at most cubesize cubed.
func New(chain []int, cubesize int, head Head, opts ...Option) *Solver {
	steps := make([]int, len(chain))
	copy(steps, chain)
	if len(chain) == 1 {
		// Single straight slice: the entry counts all cells including
		// the starting cell, so the head advances one step fewer.
		steps[0] = chain[0] - 1
	}

	s := &Solver{
		chain:  chain,
		steps:  steps,
		size:   cubesize,
		head:   head,
		cube:   make([]cell, cubesize*cubesize*cubesize),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "solver")
	return s
}

// Solve runs the backtracking search to exhaustion and returns every
// solution, in the deterministic order given by trying orientation 0 first
// at each fresh joint. Solutions are computed once: a second call after
// exhaustion is a no-op returning the same final list. The returned slice
// and its paths are owned by the solver and must not be mutated.
func (s *Solver) Solve() []Path {
	for !s.exhausted {
		path, ok := s.advance()
		if !ok {
			s.logger.Debug("search exhausted", "solutions", len(s.solutions))
			break
		}
		s.logger.Info("solution found", "index", len(s.solutions)-1, "length", len(path))
	}
	return s.solutions
}

// advance resumes the search and runs it until the next solution or
// exhaustion. It returns (solution, true) when a new solution was found and
// (nil, false) when the search space is finished; once false, every further
// call returns false.
func (s *Solver) advance() (Path, bool) {
	if s.exhausted {
		return nil, false
	}

	if s.pos == 0 {
		// First entry: the starting cell is occupied by the head itself.
		s.setOffset(0, cell{kind: cellUsed})
	} else {
		// Re-entered after a returned solution: unwind the last slice and
		// force the next untried orientation at its starting joint.
		if err := s.backtrack(); err != nil {
			return s.exhaust()
		}
	}

	for s.pos < len(s.chain) {
		c := s.cellOffset(0)
		if c.kind == cellJoint && c.state >= JointStates {
			// Every orientation at this joint failed; back up one more
			// level. At the chain start there is nothing left to try.
			if s.pos == 0 {
				return s.exhaust()
			}
			if err := s.backtrack(); err != nil {
				return s.exhaust()
			}
			continue
		}

		needed := s.steps[s.pos]
		if allowed := s.freeRun(); allowed < needed {
			// Slice does not fit in this orientation; rotate the joint
			// under the head to its next orientation. At the very first
			// position there is no joint, so the search is over.
			state := 0
			if c.kind == cellJoint {
				state = c.state
			}
			if err := s.head.RotateTo((state + 1) % JointStates); err != nil {
				return s.exhaust()
			}
			s.setOffset(0, cell{kind: cellJoint, state: state + 1})
			continue
		}

		// Lay the slice: interior cells become used, the landing cell
		// becomes a fresh joint at orientation 0.
		for i := 1; i < needed; i++ {
			s.setOffset(i, cell{kind: cellUsed})
		}
		s.setOffset(needed, cell{kind: cellJoint})
		s.path = append(s.path, s.head)
		s.head.Move(needed)
		s.head.ChangeDirection()
		s.pos++
	}

	// Full chain laid; snapshot the working path and suspend here. The next
	// advance picks the search up via the backtrack branch above.
	solution := append(Path(nil), s.path...)
	s.solutions = append(s.solutions, solution)
	return solution, true
}

// backtrack undoes the most recently laid slice: it restores the head from
// the path stack, frees the slice's cells, and rotates the joint under the
// restored head to its next orientation, recording that orientation in the
// grid. Returns ErrUnrotatedHead when the restored head is the starting head,
// which has no joint to rotate.
func (s *Solver) backtrack() error {
	s.pos--
	n := len(s.path) - 1
	s.head = s.path[n]
	s.path = s.path[:n]

	// Free the slice's interior cells and its landing joint, along the
	// restored head's direction before any rotation changes it.
	for i := 1; i <= s.steps[s.pos]; i++ {
		s.setOffset(i, cell{})
	}

	state := 0
	if c := s.cellOffset(0); c.kind == cellJoint {
		state = c.state
	}
	if err := s.head.RotateTo((state + 1) % JointStates); err != nil {
		return err
	}
	s.setOffset(0, cell{kind: cellJoint, state: state + 1})
	s.logger.Debug("backtracked", "pos", s.pos, "state", state+1)
	return nil
}

// exhaust marks the search as permanently finished.
func (s *Solver) exhaust() (Path, bool) {
	s.exhausted = true
	return nil, false
}

// freeRun returns how many consecutive free cells the head could move
// through along its direction, stopping at the cube boundary or the first
// non-free cell.
func (s *Solver) freeRun() int {
	n := 0
	pos := s.head.Pos
	for {
		next := pos.Add(s.head.Dir)
		if s.head.Sign() == 1 {
			if next.Max() >= s.size {
				break
			}
		} else {
			if next.Min() < 0 {
				break
			}
		}
		if s.cellAt(next).kind != cellFree {
			break
		}
		pos = next
		n++
	}
	return n
}

// cellOffset reads the grid cell offset steps ahead of the head.
func (s *Solver) cellOffset(offset int) cell {
	return s.cellAt(s.head.Pos.Add(s.head.Dir.Scale(offset)))
}

// setOffset writes the grid cell offset steps ahead of the head.
func (s *Solver) setOffset(offset int, c cell) {
	pos := s.head.Pos.Add(s.head.Dir.Scale(offset))
	s.cube[s.index(pos)] = c
}

func (s *Solver) cellAt(pos geom.Vec3) cell {
	return s.cube[s.index(pos)]
}

func (s *Solver) index(pos geom.Vec3) int {
	return (pos.X*s.size+pos.Y)*s.size + pos.Z
}
