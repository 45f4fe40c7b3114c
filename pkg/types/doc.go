// Package types defines the Store interface, the puzzle, run and solution
// entity types, and the standard error values shared by the snakecube
// storage backend and CLI.
package types
