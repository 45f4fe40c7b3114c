// Puzzle persistence for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/snakecube/pkg/types"
)

// SavePuzzle persists a puzzle. An empty PuzzleID means create: a UUID v7 is
// generated and CreatedAt set. A non-empty id updates the existing row and
// returns ErrNotFound when there is none.
func (b *Backend) SavePuzzle(p *types.Puzzle) (string, error) {
	if err := b.guard(); err != nil {
		return "", err
	}
	if err := p.Validate(); err != nil {
		return "", err
	}

	chain, err := encodeChain(p.Chain)
	if err != nil {
		return "", err
	}

	if p.PuzzleID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		p.PuzzleID = id.String()
		p.CreatedAt = time.Now().UTC()

		_, err = b.db.Exec(
			"INSERT INTO puzzles (puzzle_id, name, chain, cube_size, created_at) VALUES (?, ?, ?, ?, ?)",
			p.PuzzleID, p.Name, chain, p.CubeSize, p.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return "", fmt.Errorf("inserting puzzle: %w", err)
		}
		return p.PuzzleID, nil
	}

	res, err := b.db.Exec(
		"UPDATE puzzles SET name = ?, chain = ?, cube_size = ? WHERE puzzle_id = ?",
		p.Name, chain, p.CubeSize, p.PuzzleID,
	)
	if err != nil {
		return "", fmt.Errorf("updating puzzle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("updating puzzle: %w", err)
	}
	if n == 0 {
		return "", types.ErrNotFound
	}
	return p.PuzzleID, nil
}

// GetPuzzle retrieves a puzzle by id. Returns ErrNotFound if no row matches.
func (b *Backend) GetPuzzle(id string) (*types.Puzzle, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRow(
		"SELECT puzzle_id, name, chain, cube_size, created_at FROM puzzles WHERE puzzle_id = ?",
		id,
	)
	p, err := hydratePuzzle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting puzzle %s: %w", id, err)
	}
	return p, nil
}

// ListPuzzles returns all puzzles, newest first.
func (b *Backend) ListPuzzles() ([]*types.Puzzle, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(
		"SELECT puzzle_id, name, chain, cube_size, created_at FROM puzzles ORDER BY created_at DESC, puzzle_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing puzzles: %w", err)
	}
	defer rows.Close()

	var puzzles []*types.Puzzle
	for rows.Next() {
		p, err := hydratePuzzle(rows)
		if err != nil {
			return nil, fmt.Errorf("listing puzzles: %w", err)
		}
		puzzles = append(puzzles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing puzzles: %w", err)
	}
	return puzzles, nil
}

// rowScanner abstracts sql.Row and sql.Rows for hydration helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydratePuzzle scans one puzzles row into a Puzzle.
func hydratePuzzle(row rowScanner) (*types.Puzzle, error) {
	var p types.Puzzle
	var chain, createdAt string
	if err := row.Scan(&p.PuzzleID, &p.Name, &chain, &p.CubeSize, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if p.Chain, err = decodeChain(chain); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
