// Package sqlite implements the SQLite result store for snakecube: puzzles,
// solve runs and the solutions each run discovered.
package sqlite

// Schema DDL for all tables. The database is the store of record, so the
// schema is created only when missing.
const (
	createPuzzles = `CREATE TABLE IF NOT EXISTS puzzles (
    puzzle_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    chain TEXT NOT NULL,
    cube_size INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    puzzle_id TEXT NOT NULL,
    start_pos TEXT NOT NULL,
    start_dir TEXT NOT NULL,
    solution_count INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (puzzle_id) REFERENCES puzzles(puzzle_id)
);`

	createSolutions = `CREATE TABLE IF NOT EXISTS solutions (
    solution_id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    path TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (run_id, ordinal),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`
)

// schemaDDL lists the statements executed on Attach, in dependency order.
var schemaDDL = []string{createPuzzles, createRuns, createSolutions}
