package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
)

// sweptCells replays a solution and returns every cube cell its slices
// cover, failing the test on any duplicate or out-of-bounds cell.
func sweptCells(t *testing.T, chain []int, cubesize int, path Path) map[geom.Vec3]bool {
	t.Helper()
	require.Len(t, path, len(chain))

	steps := make([]int, len(chain))
	copy(steps, chain)
	if len(chain) == 1 {
		steps[0] = chain[0] - 1
	}

	cells := make(map[geom.Vec3]bool)
	record := func(pos geom.Vec3) {
		assert.False(t, cells[pos], "cell %v covered twice", pos)
		for _, comp := range pos.Slice() {
			assert.GreaterOrEqual(t, comp, 0, "cell %v out of bounds", pos)
			assert.Less(t, comp, cubesize, "cell %v out of bounds", pos)
		}
		cells[pos] = true
	}

	record(path[0].Pos)
	for i, h := range path {
		for k := 1; k <= steps[i]; k++ {
			record(h.Pos.Add(h.Dir.Scale(k)))
		}
	}
	return cells
}

// A one-cell chain fills a one-cell cube: the degenerate puzzle has exactly
// one solution, the starting head itself.
func TestSolveSingleCell(t *testing.T) {
	s := New([]int{1}, 1, NewHead(geom.Vec3{}, geom.UnitX))
	solutions := s.Solve()

	require.Len(t, solutions, 1)
	require.Len(t, solutions[0], 1)
	assert.Equal(t, geom.Vec3{}, solutions[0][0].Pos)

	// Re-querying after exhaustion returns the same final list.
	again := s.Solve()
	assert.Equal(t, solutions, again)
}

// A slice longer than any straight run in the cube cannot fit.
func TestSolveNoFit(t *testing.T) {
	for _, dir := range geom.BaseDirections {
		start := geom.Vec3{}
		if dir.Min() < 0 {
			// Negative directions start from the far corner.
			start = geom.NewVec3(1, 1, 1)
		}
		s := New([]int{3}, 2, NewHead(start, dir))
		solutions := s.Solve()
		assert.Empty(t, solutions, "direction %v", dir)

		// Exhaustion on the very first probe is terminal.
		assert.Empty(t, s.Solve(), "direction %v", dir)
	}
}

func TestSolveTwoCube(t *testing.T) {
	// Eight cells, a turn at every one of them.
	chain := []int{1, 1, 1, 1, 1, 1, 1}
	s := New(chain, 2, NewHead(geom.Vec3{}, geom.UnitX))
	solutions := s.Solve()

	require.NotEmpty(t, solutions)
	for _, sol := range solutions {
		cells := sweptCells(t, chain, 2, sol)
		assert.Len(t, cells, 8, "a solution must fill the cube")
	}
}

func TestSolveReferencePuzzle(t *testing.T) {
	s := New(ReferenceChain, ReferenceCubeSize, NewHead(geom.Vec3{}, geom.UnitX))
	solutions := s.Solve()

	require.Len(t, solutions, 2)
	for _, sol := range solutions {
		cells := sweptCells(t, ReferenceChain, ReferenceCubeSize, sol)
		assert.Len(t, cells, 27, "a solution must fill the cube")
	}

	// The two solutions are related by mirroring at the yz plane, rotating
	// 90 degrees about x, then 180 degrees about z.
	similar := func(v geom.Vec3) geom.Vec3 {
		return geom.RotZ.Apply(geom.RotZ.Apply(geom.RotX.Apply(geom.MirrorYZ.Apply(v))))
	}
	require.Len(t, solutions[1], len(solutions[0]))
	for i := range solutions[0] {
		assert.Equal(t, similar(solutions[0][i].Pos), solutions[1][i].Pos,
			"position %d not related by the similarity transform", i)
	}
}

func TestSolveDeterministic(t *testing.T) {
	first := New(ReferenceChain, ReferenceCubeSize, NewHead(geom.Vec3{}, geom.UnitX)).Solve()
	second := New(ReferenceChain, ReferenceCubeSize, NewHead(geom.Vec3{}, geom.UnitX)).Solve()
	assert.Equal(t, first, second)
}

// Solve must be idempotent: repeated calls return the identical final list
// with nothing duplicated or dropped.
func TestSolveIdempotent(t *testing.T) {
	s := New(ReferenceChain, ReferenceCubeSize, NewHead(geom.Vec3{}, geom.UnitX))
	first := s.Solve()
	second := s.Solve()
	third := s.Solve()
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
}

// advance yields solutions one at a time and is terminal after exhaustion.
func TestAdvanceResumes(t *testing.T) {
	s := New(ReferenceChain, ReferenceCubeSize, NewHead(geom.Vec3{}, geom.UnitX))

	first, ok := s.advance()
	require.True(t, ok)
	require.Len(t, first, len(ReferenceChain))

	second, ok := s.advance()
	require.True(t, ok)
	assert.NotEqual(t, first, second)

	_, ok = s.advance()
	require.False(t, ok)
	_, ok = s.advance()
	assert.False(t, ok, "exhaustion must be permanent")
}

// Solutions returned earlier must not be mutated by further searching.
func TestSolutionsNotAliased(t *testing.T) {
	s := New(ReferenceChain, ReferenceCubeSize, NewHead(geom.Vec3{}, geom.UnitX))

	first, ok := s.advance()
	require.True(t, ok)
	snapshot := append(Path(nil), first...)

	s.Solve()
	assert.Equal(t, snapshot, first)
}
