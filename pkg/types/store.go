package types

import "errors"

// Store defines backend-agnostic access to persisted puzzles, solve runs and
// solutions. Callers attach to a backend, perform operations, and detach
// when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// SavePuzzle persists a puzzle. An empty PuzzleID means create: a new
	// id is generated and returned. Returns ErrNotFound when updating a
	// puzzle that does not exist.
	SavePuzzle(p *Puzzle) (string, error)

	// GetPuzzle retrieves a puzzle by id.
	// Returns ErrNotFound if no puzzle exists with that id.
	GetPuzzle(id string) (*Puzzle, error)

	// ListPuzzles returns all puzzles, newest first.
	ListPuzzles() ([]*Puzzle, error)

	// SaveRun persists a solve run together with its solutions, in
	// discovery order. The run's PuzzleID must reference a stored puzzle.
	SaveRun(r *SolveRun, solutions []*Solution) (string, error)

	// ListRuns returns all solve runs for a puzzle, newest first.
	ListRuns(puzzleID string) ([]*SolveRun, error)

	// ListSolutions returns a run's solutions in discovery order.
	ListSolutions(runID string) ([]*Solution, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Entity errors shared by store implementations.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)
