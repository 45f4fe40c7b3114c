// Puzzles command: list stored puzzles.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/snakecube/pkg/types"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "List stored puzzles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store types.Store) error {
			puzzles, err := store.ListPuzzles()
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(puzzles)
			}
			if len(puzzles) == 0 {
				fmt.Println("no puzzles stored")
				return nil
			}
			for _, p := range puzzles {
				fmt.Printf("%s  %-16s cube %d  chain %v\n", p.PuzzleID, p.Name, p.CubeSize, p.Chain)
			}
			return nil
		})
	},
}
