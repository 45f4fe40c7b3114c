package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
)

func validPuzzle() *Puzzle {
	return &Puzzle{
		Name:     "reference",
		Chain:    []int{2, 1, 1, 2, 1, 2, 1, 1, 2, 2, 1, 1, 1, 2, 2, 2, 2},
		CubeSize: 3,
	}
}

func TestPuzzleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Puzzle)
		wantErr error
	}{
		{"valid", func(p *Puzzle) {}, nil},
		{"empty name", func(p *Puzzle) { p.Name = "" }, ErrInvalidName},
		{"empty chain", func(p *Puzzle) { p.Chain = nil }, ErrInvalidChain},
		{"zero slice", func(p *Puzzle) { p.Chain = []int{2, 0, 1} }, ErrInvalidChain},
		{"negative slice", func(p *Puzzle) { p.Chain = []int{2, -1} }, ErrInvalidChain},
		{"zero cube", func(p *Puzzle) { p.CubeSize = 0 }, ErrInvalidCubeSize},
		{"chain overflows cube", func(p *Puzzle) { p.CubeSize = 2 }, ErrChainTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPuzzle()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPuzzleCells(t *testing.T) {
	assert.Equal(t, 27, validPuzzle().Cells())

	single := &Puzzle{Name: "straight", Chain: []int{1}, CubeSize: 1}
	assert.Equal(t, 1, single.Cells())
	assert.NoError(t, single.Validate())
}

func TestSolveRunValidateStart(t *testing.T) {
	p := validPuzzle()

	tests := []struct {
		name    string
		run     SolveRun
		wantErr error
	}{
		{"corner", SolveRun{StartDir: geom.UnitX}, nil},
		{"interior", SolveRun{StartPos: geom.NewVec3(1, 1, 1), StartDir: geom.UnitZ.Neg()}, nil},
		{"outside", SolveRun{StartPos: geom.NewVec3(3, 0, 0), StartDir: geom.UnitX}, ErrInvalidStart},
		{"negative", SolveRun{StartPos: geom.NewVec3(0, -1, 0), StartDir: geom.UnitX}, ErrInvalidStart},
		{"zero direction", SolveRun{StartDir: geom.Vec3{}}, ErrInvalidDirection},
		{"diagonal direction", SolveRun{StartDir: geom.NewVec3(1, 1, 0)}, ErrInvalidDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run.ValidateStart(p)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
