package solver

import (
	"math/rand"

	"sudoku_core_go/internal/types"
)

// CanPlace reports whether digit may be placed at (row, col) without
// repeating in the row, the column, or the containing 3x3 box.
// Empty cells never conflict, so the check works on partial grids.
// Callers place into empty cells only; revalidating an occupied cell
// requires clearing it first.
func CanPlace(g *types.Grid, row, col, digit int) bool {
	for x := 0; x < types.Size; x++ {
		if g[row][x] == digit {
			return false
		}
	}

	for x := 0; x < types.Size; x++ {
		if g[x][col] == digit {
			return false
		}
	}

	boxRow := (row / types.BoxSize) * types.BoxSize
	boxCol := (col / types.BoxSize) * types.BoxSize
	for r := boxRow; r < boxRow+types.BoxSize; r++ {
		for c := boxCol; c < boxCol+types.BoxSize; c++ {
			if g[r][c] == digit {
				return false
			}
		}
	}

	return true
}

// Candidates returns the digits legal at (row, col) on the current grid.
// An occupied cell has no candidates.
func Candidates(g *types.Grid, row, col int) []int {
	if g[row][col] != types.Empty {
		return nil
	}
	nums := make([]int, 0, types.Size)
	for digit := 1; digit <= types.Size; digit++ {
		if CanPlace(g, row, col, digit) {
			nums = append(nums, digit)
		}
	}
	return nums
}

// Ordering yields the candidate digits to try at one branching step.
// It is called once per step, so a randomized policy can reshuffle
// between steps while the recursive skeleton stays shared.
type Ordering func() [types.Size]int

// SequentialOrder tries digits 1-9 in fixed order.
func SequentialOrder() Ordering {
	return func() [types.Size]int {
		var nums [types.Size]int
		for i := range nums {
			nums[i] = i + 1
		}
		return nums
	}
}

// RandomOrder tries digits in a fresh random order at every step.
// Solving an empty grid with it produces varied complete boards.
func RandomOrder(rng *rand.Rand) Ordering {
	return func() [types.Size]int {
		var nums [types.Size]int
		for i := range nums {
			nums[i] = i + 1
		}
		rng.Shuffle(types.Size, func(i, j int) {
			nums[i], nums[j] = nums[j], nums[i]
		})
		return nums
	}
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(g *types.Grid) (int, int, bool) {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if g[r][c] == types.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve fills g in place to a complete valid board, branching on the
// first empty cell in row-major order and trying candidates in the
// order the policy dictates. It returns false and leaves g unchanged
// when no completion exists from the current partial state.
func Solve(g *types.Grid, order Ordering) bool {
	row, col, ok := findEmpty(g)
	if !ok {
		return true
	}

	for _, digit := range order() {
		if CanPlace(g, row, col, digit) {
			g[row][col] = digit
			if Solve(g, order) {
				return true
			}
			g[row][col] = types.Empty
		}
	}

	return false
}
