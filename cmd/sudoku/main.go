package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sudoku_core_go/db"
	"sudoku_core_go/internal/generator"
	"sudoku_core_go/internal/solver"
	"sudoku_core_go/internal/types"
	"sudoku_core_go/internal/validator"
	"sudoku_core_go/internal/visualizer"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Generate, solve and check 9x9 Sudoku puzzles",
	}
	root.AddCommand(newGenerateCommand(), newSolveCommand(), newCheckCommand(), newCountCommand(), newBatchCommand())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newGenerateCommand() *cobra.Command {
	var (
		difficulty    string
		seed          int64
		checkInterval int
		showSolution  bool
		upload        bool
		outFile       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a solved counterpart",
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := types.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			gen := generator.New(diff)
			if seed != 0 {
				gen.SetSeed(seed)
			}
			if err := gen.SetCheckInterval(checkInterval); err != nil {
				return err
			}

			start := time.Now()
			p, err := gen.Generate()
			if err != nil {
				return err
			}

			viz := visualizer.New(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "Puzzle %s (%s, %d givens, generated in %v)\n",
				p.ID, p.Difficulty, len(p.Givens), time.Since(start).Round(time.Millisecond))
			viz.PrintPuzzle(p)
			if showSolution {
				fmt.Fprintln(cmd.OutOrStdout(), "Solution:")
				viz.PrintSolution(p)
			}

			if outFile != "" {
				data, err := p.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to serialize puzzle: %w", err)
				}
				if err := os.WriteFile(outFile, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outFile, err)
				}
			}

			if upload {
				store, err := db.NewStore()
				if err != nil {
					return err
				}
				return store.Upload(p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "easy, medium or hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible puzzles (0 = time-based)")
	cmd.Flags().IntVar(&checkInterval, "check-interval", generator.DefaultCheckInterval,
		"verify uniqueness every nth removal (1 = every removal)")
	cmd.Flags().BoolVarP(&showSolution, "solution", "s", false, "also print the solution")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload the puzzle to PocketBase")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the puzzle as JSON to this file")
	return cmd
}

func newSolveCommand() *cobra.Command {
	var randomized bool

	cmd := &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve a partially filled grid given as an 81-character line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := types.ParseGrid(args[0])
			if err != nil {
				return err
			}

			order := solver.SequentialOrder()
			if randomized {
				order = solver.RandomOrder(rand.New(rand.NewSource(time.Now().UnixNano())))
			}

			if !solver.Solve(g, order) {
				return fmt.Errorf("grid has no solution")
			}
			visualizer.New(cmd.OutOrStdout()).PrintGrid(g)
			fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&randomized, "random", false, "use randomized candidate order")
	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grid>",
		Short: "Check a filled grid for completeness and correctness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := types.ParseGrid(args[0])
			if err != nil {
				return err
			}

			switch {
			case !validator.IsComplete(g):
				fmt.Fprintln(cmd.OutOrStdout(), "incomplete: the grid still has empty cells")
			case validator.IsValid(g):
				fmt.Fprintln(cmd.OutOrStdout(), "correct: every row, column and box holds 1-9")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "incorrect: at least one unit has a duplicate")
			}
			return nil
		},
	}
}

func newCountCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "count <grid>",
		Short: "Count completions of a grid, capped at --limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("limit must be at least 1, got %d", limit)
			}
			g, err := types.ParseGrid(args[0])
			if err != nil {
				return err
			}
			n := solver.CountSolutions(g, limit)
			if n >= limit {
				fmt.Fprintf(cmd.OutOrStdout(), "at least %d solutions\n", n)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d solutions\n", n)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 2, "stop counting once this many solutions are found")
	return cmd
}

func newBatchCommand() *cobra.Command {
	var (
		count         int
		difficulty    string
		checkInterval int
		upload        bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many puzzles concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := types.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			progress := make(chan generator.Progress)
			go func() {
				for p := range progress {
					fmt.Fprintf(cmd.OutOrStdout(), "\r%s", p.Message)
					if p.Completed {
						fmt.Fprintln(cmd.OutOrStdout())
					}
				}
			}()

			start := time.Now()
			puzzles, err := generator.Batch(cmd.Context(), count, diff, checkInterval, progress)
			close(progress)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d puzzles in %v\n",
				len(puzzles), time.Since(start).Round(time.Millisecond))

			if upload {
				store, err := db.NewStore()
				if err != nil {
					return err
				}
				for _, p := range puzzles {
					if err := store.Upload(p); err != nil {
						log.Warnf("upload of %s failed: %v", p.ID, err)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of puzzles to generate")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "easy, medium or hard")
	cmd.Flags().IntVar(&checkInterval, "check-interval", generator.DefaultCheckInterval,
		"verify uniqueness every nth removal (1 = every removal)")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload every puzzle to PocketBase")
	return cmd
}
