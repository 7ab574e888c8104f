package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/duke-git/lancet/v2/random"

	"sudoku_core_go/internal/solver"
	"sudoku_core_go/internal/types"
	"sudoku_core_go/internal/validator"
)

// DefaultCheckInterval verifies uniqueness on every 5th accepted
// removal. Removals between checkpoints are accepted optimistically,
// trading a strict single-solution guarantee for generation latency.
// Set the interval to 1 for a hard guarantee.
const DefaultCheckInterval = 5

// Generator carves puzzles out of freshly solved boards.
type Generator struct {
	difficulty    types.Difficulty
	checkInterval int
	rng           *rand.Rand
}

func New(difficulty types.Difficulty) *Generator {
	return &Generator{
		difficulty:    difficulty,
		checkInterval: DefaultCheckInterval,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed makes generation reproducible.
func (g *Generator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetCheckInterval controls how often the carve loop verifies that the
// puzzle still has a unique solution: every nth accepted removal.
func (g *Generator) SetCheckInterval(n int) error {
	if n < 1 {
		return errors.New("check interval must be at least 1")
	}
	g.checkInterval = n
	return nil
}

// Generate produces a puzzle, its solution and the set of givens.
//
// It fills an empty grid with the randomized solver (always succeeds
// from empty), keeps a copy as the solution, then clears cells in
// shuffled order until the difficulty's removal target is met or all
// 81 positions have been tried. At every checkInterval-th accepted
// removal the solution counter runs with limit 2 on the current state;
// a count other than 1 rolls the removal back without counting it.
func (g *Generator) Generate() (*types.Puzzle, error) {
	var grid types.Grid
	if !solver.Solve(&grid, solver.RandomOrder(g.rng)) {
		// cannot happen from an empty grid; kept as a guard
		return nil, errors.New("failed to fill a complete board")
	}
	solution := grid

	positions := g.rng.Perm(types.CellCount)
	target := g.difficulty.Removals()

	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		row, col := pos/types.Size, pos%types.Size

		backup := grid[row][col]
		grid[row][col] = types.Empty

		if removed%g.checkInterval == 0 {
			if solver.CountSolutions(&grid, 2) == 1 {
				removed++
			} else {
				grid[row][col] = backup
			}
		} else {
			removed++
		}
	}

	givens := make([]types.Position, 0, types.CellCount-removed)
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if grid[r][c] != types.Empty {
				givens = append(givens, types.Position{Row: r, Col: c})
			}
		}
	}

	return &types.Puzzle{
		ID:         newID(),
		Grid:       grid,
		Solution:   solution,
		Givens:     givens,
		Difficulty: g.difficulty,
	}, nil
}

// newID returns a short record ID; the storage layer caps IDs at 6
// characters.
func newID() string {
	return random.RandString(6)
}

// Verify re-checks a finished puzzle end to end: every given matches
// the solution, the solution is a complete valid board, and the puzzle
// still admits exactly one completion. Intended for strict callers and
// tests; generation itself relies on the sampled checks above.
func Verify(p *types.Puzzle) error {
	if !validator.IsComplete(&p.Solution) || !validator.IsValid(&p.Solution) {
		return errors.New("solution grid is not a valid complete board")
	}
	for _, pos := range p.Givens {
		if p.Grid[pos.Row][pos.Col] != p.Solution[pos.Row][pos.Col] {
			return fmt.Errorf("given at (%d,%d) disagrees with solution", pos.Row, pos.Col)
		}
	}
	if n := solver.CountSolutions(&p.Grid, 2); n != 1 {
		return fmt.Errorf("puzzle admits %d completions, want exactly 1", n)
	}
	return nil
}
