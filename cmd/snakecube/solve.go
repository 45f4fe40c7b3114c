// Solve command: run the backtracking search for one puzzle and store the
// results.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/snakecube/pkg/snake"
	"github.com/mesh-intelligence/snakecube/pkg/types"
)

var (
	flagChain string
	flagSize  int
	flagStart string
	flagDir   string
	flagName  string
	flagSave  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find all foldings of a chain that fill the cube",
	Long: `Solve enumerates every folding of the given chain that exactly fills
the cube, starting from the given cell and direction. Each chain entry is the
number of steps of one straight slice; a single-entry chain gives the total
cell count instead. Results are stored unless --save=false.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, err := parseChain(flagChain)
		if err != nil {
			return err
		}
		start, err := parseVec(flagStart)
		if err != nil {
			return err
		}
		dir, err := parseVec(flagDir)
		if err != nil {
			return err
		}

		puzzle := &types.Puzzle{Name: flagName, Chain: chain, CubeSize: flagSize}
		if err := puzzle.Validate(); err != nil {
			return err
		}
		run := &types.SolveRun{StartPos: start, StartDir: dir}
		if err := run.ValidateStart(puzzle); err != nil {
			return err
		}

		solver := snake.New(chain, flagSize, snake.NewHead(start, dir), snake.WithLogger(logger))
		solutions := toSolutions(solver.Solve())

		if flagSave {
			err := withStore(func(store types.Store) error {
				puzzleID, err := store.SavePuzzle(puzzle)
				if err != nil {
					return fmt.Errorf("saving puzzle: %w", err)
				}
				run.PuzzleID = puzzleID
				if _, err := store.SaveRun(run, solutions); err != nil {
					return fmt.Errorf("saving run: %w", err)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		if flagJSON {
			return printJSON(struct {
				Puzzle    *types.Puzzle     `json:"puzzle"`
				Run       *types.SolveRun   `json:"run"`
				Solutions []*types.Solution `json:"solutions"`
			}{puzzle, run, solutions})
		}

		printSolutions(solutions)
		if flagSave {
			fmt.Printf("stored run %s (puzzle %s)\n", run.RunID, puzzle.PuzzleID)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&flagChain, "chain", "", "comma-separated slice lengths, e.g. 2,1,1,2 (required)")
	solveCmd.Flags().IntVar(&flagSize, "size", 3, "cube edge length")
	solveCmd.Flags().StringVar(&flagStart, "start", "0,0,0", "starting cell")
	solveCmd.Flags().StringVar(&flagDir, "dir", "1,0,0", "starting direction")
	solveCmd.Flags().StringVar(&flagName, "name", "ad hoc", "puzzle name used when storing")
	solveCmd.Flags().BoolVar(&flagSave, "save", true, "store the puzzle, run and solutions")
	solveCmd.MarkFlagRequired("chain")
}
