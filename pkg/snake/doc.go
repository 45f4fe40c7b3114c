// Package snake solves snake cube folding puzzles. A puzzle is a chain of
// rigid straight slices connected by 90 degree dual joints; the solver finds
// every folding of the chain that exactly fills an NxNxN cube, starting from
// a given cell and initial direction.
//
// The search is an explicit, resumable backtracking state machine: a Solver
// owns the cube occupancy grid, a head cursor and a working path stack, and
// yields solutions one at a time in a fixed deterministic order. Solve drains
// the machine and returns all solutions; calling Solve again after
// exhaustion returns the same final list.
package snake
