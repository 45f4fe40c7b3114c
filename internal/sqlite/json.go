package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
	"github.com/mesh-intelligence/snakecube/pkg/types"
)

// Vectors and paths are stored as JSON text in the database: a vector as a
// plain coordinate list, a path as a list of [position, direction] pairs.

func encodeChain(chain []int) (string, error) {
	b, err := json.Marshal(chain)
	if err != nil {
		return "", fmt.Errorf("encoding chain: %w", err)
	}
	return string(b), nil
}

func decodeChain(s string) ([]int, error) {
	var chain []int
	if err := json.Unmarshal([]byte(s), &chain); err != nil {
		return nil, fmt.Errorf("decoding chain: %w", err)
	}
	return chain, nil
}

func encodeVec(v geom.Vec3) (string, error) {
	b, err := json.Marshal(v.Slice())
	if err != nil {
		return "", fmt.Errorf("encoding vector: %w", err)
	}
	return string(b), nil
}

func decodeVec(s string) (geom.Vec3, error) {
	var coords []int
	if err := json.Unmarshal([]byte(s), &coords); err != nil {
		return geom.Vec3{}, fmt.Errorf("decoding vector: %w", err)
	}
	if len(coords) != 3 {
		return geom.Vec3{}, fmt.Errorf("decoding vector: want 3 coordinates, got %d", len(coords))
	}
	return geom.FromSlice(coords), nil
}

func encodePath(path []types.PathPoint) (string, error) {
	pairs := make([][2][]int, len(path))
	for i, p := range path {
		pairs[i] = [2][]int{p.Pos.Slice(), p.Dir.Slice()}
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return "", fmt.Errorf("encoding path: %w", err)
	}
	return string(b), nil
}

func decodePath(s string) ([]types.PathPoint, error) {
	var pairs [][2][]int
	if err := json.Unmarshal([]byte(s), &pairs); err != nil {
		return nil, fmt.Errorf("decoding path: %w", err)
	}
	path := make([]types.PathPoint, len(pairs))
	for i, pair := range pairs {
		if len(pair[0]) != 3 || len(pair[1]) != 3 {
			return nil, fmt.Errorf("decoding path: point %d malformed", i)
		}
		path[i] = types.PathPoint{
			Pos: geom.FromSlice(pair[0]),
			Dir: geom.FromSlice(pair[1]),
		}
	}
	return path, nil
}
