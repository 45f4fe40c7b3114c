// Runs command: list stored solve runs of a puzzle.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/snakecube/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs <puzzle-id>",
	Short: "List stored solve runs of a puzzle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store types.Store) error {
			runs, err := store.ListRuns(args[0])
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("no runs stored for this puzzle")
				return nil
			}
			for _, r := range runs {
				fmt.Printf("%s  start %v dir %v  %d solution(s)\n",
					r.RunID, r.StartPos.Slice(), r.StartDir.Slice(), r.SolutionCount)
			}
			return nil
		})
	},
}
