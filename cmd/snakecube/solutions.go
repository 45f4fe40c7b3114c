// Solutions command: show the stored solutions of a solve run.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/snakecube/pkg/types"
)

var solutionsCmd = &cobra.Command{
	Use:   "solutions <run-id>",
	Short: "Show the stored solutions of a solve run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store types.Store) error {
			solutions, err := store.ListSolutions(args[0])
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(solutions)
			}
			printSolutions(solutions)
			return nil
		})
	},
}
