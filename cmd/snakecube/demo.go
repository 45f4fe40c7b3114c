// Demo command: solve the classic 3x3x3 snake cube from every interesting
// starting head and show the similarity between the two solutions.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/snakecube/pkg/geom"
	"github.com/mesh-intelligence/snakecube/pkg/snake"
	"github.com/mesh-intelligence/snakecube/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Solve the classic 3x3x3 snake cube from every interesting start",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var all []*types.Solution
		for _, head := range snake.ReferenceHeads() {
			fmt.Printf(">> start backtracking with starting point %v\n", head)
			solver := snake.New(snake.ReferenceChain, snake.ReferenceCubeSize, head,
				snake.WithLogger(logger))
			solutions := toSolutions(solver.Solve())

			fmt.Println("==== solutions ====")
			printSolutions(solutions)
			fmt.Println()
			all = append(all, solutions...)
		}

		if len(all) >= 2 && similar(all[0], all[1]) {
			fmt.Println("The two solutions are similar! Just mirror one solution at the " +
				"yz-plane, rotate 90 degree about the x axis and 180 degree " +
				"about the z axis, and you got the other solution.")
		}
		return nil
	},
}

// similar reports whether b's base positions are a's transformed by
// mirroring at the yz plane, rotating 90 degrees about x, then 180 degrees
// about z.
func similar(a, b *types.Solution) bool {
	if len(a.Path) != len(b.Path) {
		return false
	}
	for i := range a.Path {
		want := geom.RotZ.Apply(geom.RotZ.Apply(geom.RotX.Apply(geom.MirrorYZ.Apply(a.Path[i].Pos))))
		if b.Path[i].Pos != want {
			return false
		}
	}
	return true
}
