// Solve run and solution persistence for the SQLite backend.
package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/snakecube/pkg/types"
)

// SaveRun persists a solve run and its solutions in one transaction. The
// run's PuzzleID must reference a stored puzzle. Ids and timestamps are
// generated here; SolutionCount is set from the solutions given.
func (b *Backend) SaveRun(r *types.SolveRun, solutions []*types.Solution) (string, error) {
	if err := b.guard(); err != nil {
		return "", err
	}
	if r.PuzzleID == "" {
		return "", types.ErrInvalidID
	}
	if _, err := b.GetPuzzle(r.PuzzleID); err != nil {
		return "", err
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	r.RunID = runID.String()
	r.SolutionCount = len(solutions)
	r.CreatedAt = time.Now().UTC()

	startPos, err := encodeVec(r.StartPos)
	if err != nil {
		return "", err
	}
	startDir, err := encodeVec(r.StartDir)
	if err != nil {
		return "", err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, puzzle_id, start_pos, start_dir, solution_count, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.RunID, r.PuzzleID, startPos, startDir, r.SolutionCount, r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for ordinal, sol := range solutions {
		solID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		sol.SolutionID = solID.String()
		sol.RunID = r.RunID
		sol.Ordinal = ordinal
		sol.CreatedAt = r.CreatedAt

		path, err := encodePath(sol.Path)
		if err != nil {
			return "", err
		}
		_, err = tx.Exec(
			"INSERT INTO solutions (solution_id, run_id, ordinal, path, created_at) VALUES (?, ?, ?, ?, ?)",
			sol.SolutionID, sol.RunID, sol.Ordinal, path, sol.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return "", fmt.Errorf("inserting solution %d: %w", ordinal, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return r.RunID, nil
}

// ListRuns returns all solve runs for a puzzle, newest first.
func (b *Backend) ListRuns(puzzleID string) ([]*types.SolveRun, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	if puzzleID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := b.db.Query(
		"SELECT run_id, puzzle_id, start_pos, start_dir, solution_count, created_at FROM runs WHERE puzzle_id = ? ORDER BY created_at DESC, run_id DESC",
		puzzleID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*types.SolveRun
	for rows.Next() {
		var r types.SolveRun
		var startPos, startDir, createdAt string
		if err := rows.Scan(&r.RunID, &r.PuzzleID, &startPos, &startDir, &r.SolutionCount, &createdAt); err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}
		if r.StartPos, err = decodeVec(startPos); err != nil {
			return nil, err
		}
		if r.StartDir, err = decodeVec(startDir); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		runs = append(runs, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// ListSolutions returns a run's solutions in discovery order.
func (b *Backend) ListSolutions(runID string) ([]*types.Solution, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	if runID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := b.db.Query(
		"SELECT solution_id, run_id, ordinal, path, created_at FROM solutions WHERE run_id = ? ORDER BY ordinal",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing solutions: %w", err)
	}
	defer rows.Close()

	var solutions []*types.Solution
	for rows.Next() {
		var s types.Solution
		var path, createdAt string
		if err := rows.Scan(&s.SolutionID, &s.RunID, &s.Ordinal, &path, &createdAt); err != nil {
			return nil, fmt.Errorf("listing solutions: %w", err)
		}
		if s.Path, err = decodePath(path); err != nil {
			return nil, err
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		solutions = append(solutions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing solutions: %w", err)
	}
	return solutions, nil
}
