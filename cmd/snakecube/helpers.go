// Shared parsing and printing helpers for the snakecube CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
	"github.com/mesh-intelligence/snakecube/pkg/snake"
	"github.com/mesh-intelligence/snakecube/pkg/types"
)

// parseChain parses a comma-separated chain such as "2,1,1,2".
func parseChain(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	chain := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid chain entry %q: %w", part, err)
		}
		chain = append(chain, n)
	}
	return chain, nil
}

// parseVec parses a comma-separated integer vector such as "0,0,0".
func parseVec(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("invalid vector %q: want 3 components", s)
	}
	coords := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("invalid vector component %q: %w", part, err)
		}
		coords[i] = n
	}
	return geom.FromSlice(coords), nil
}

// toSolutions converts solver paths to storable solution entities.
func toSolutions(paths []snake.Path) []*types.Solution {
	solutions := make([]*types.Solution, len(paths))
	for i, path := range paths {
		points := make([]types.PathPoint, len(path))
		for j, h := range path {
			points[j] = types.PathPoint{Pos: h.Pos, Dir: h.Dir}
		}
		solutions[i] = &types.Solution{Ordinal: i, Path: points}
	}
	return solutions
}

// printSolutions writes one line per solution listing its base positions,
// the shape the classic driver prints.
func printSolutions(solutions []*types.Solution) {
	for i, sol := range solutions {
		bases := make([][]int, len(sol.Path))
		for j, p := range sol.Path {
			bases[j] = p.Pos.Slice()
		}
		fmt.Printf("solution %d (as base points): %v\n", i, bases)
	}
	if len(solutions) == 0 {
		fmt.Println("no solutions")
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
