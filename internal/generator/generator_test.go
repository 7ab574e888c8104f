package generator

import (
	"testing"

	"sudoku_core_go/internal/solver"
	"sudoku_core_go/internal/types"
	"sudoku_core_go/internal/validator"
)

func TestGenerateEasyRemovalCount(t *testing.T) {
	gen := New(types.Easy)
	gen.SetSeed(12345)

	p, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := types.CellCount - types.Easy.Removals()
	if got := p.Grid.FilledCells(); got != want {
		t.Fatalf("easy puzzle has %d filled cells, want %d", got, want)
	}
	if len(p.Givens) != want {
		t.Fatalf("givens list has %d entries, want %d", len(p.Givens), want)
	}
}

func TestGenerateSolutionIsValid(t *testing.T) {
	for _, diff := range []types.Difficulty{types.Easy, types.Medium, types.Hard} {
		t.Run(string(diff), func(t *testing.T) {
			gen := New(diff)
			gen.SetSeed(99)

			p, err := gen.Generate()
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if !validator.IsComplete(&p.Solution) || !validator.IsValid(&p.Solution) {
				t.Fatalf("solution is not a valid complete board:\n%s", p.Solution.String())
			}
			if p.Difficulty != diff {
				t.Fatalf("puzzle difficulty = %q, want %q", p.Difficulty, diff)
			}
		})
	}
}

func TestGenerateGivensMatchSolution(t *testing.T) {
	gen := New(types.Medium)
	gen.SetSeed(7)

	p, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, pos := range p.Givens {
		if p.Grid[pos.Row][pos.Col] != p.Solution[pos.Row][pos.Col] {
			t.Fatalf("given at (%d,%d) = %d, solution has %d",
				pos.Row, pos.Col, p.Grid[pos.Row][pos.Col], p.Solution[pos.Row][pos.Col])
		}
	}

	// clearing the non-given cells of the solution reproduces the puzzle
	masked := p.Solution
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if !p.IsGiven(r, c) {
				masked[r][c] = types.Empty
			}
		}
	}
	if masked != p.Grid {
		t.Fatal("masking the solution by the givens does not reproduce the puzzle")
	}
}

func TestGenerateStrictCheckIntervalIsUnique(t *testing.T) {
	gen := New(types.Easy)
	gen.SetSeed(2024)
	if err := gen.SetCheckInterval(1); err != nil {
		t.Fatalf("SetCheckInterval(1) failed: %v", err)
	}

	p, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := Verify(p); err != nil {
		t.Fatalf("strictly generated puzzle failed verification: %v", err)
	}
	if n := solver.CountSolutions(&p.Grid, 2); n != 1 {
		t.Fatalf("puzzle admits %d completions, want 1", n)
	}
}

func TestSetCheckIntervalRejectsZero(t *testing.T) {
	gen := New(types.Easy)
	if err := gen.SetCheckInterval(0); err == nil {
		t.Fatal("SetCheckInterval(0) succeeded, want error")
	}
}

func TestGenerateAssignsShortID(t *testing.T) {
	gen := New(types.Easy)
	gen.SetSeed(5)

	p, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.ID == "" || len(p.ID) > 6 {
		t.Fatalf("puzzle ID %q is not 1-6 characters", p.ID)
	}
}

func TestGenerateVariesAcrossSeeds(t *testing.T) {
	first, err := seededPuzzle(1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := seededPuzzle(2)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if first.Solution == second.Solution {
		t.Fatal("different seeds produced the same solved board")
	}
}

func seededPuzzle(seed int64) (*types.Puzzle, error) {
	gen := New(types.Easy)
	gen.SetSeed(seed)
	return gen.Generate()
}
