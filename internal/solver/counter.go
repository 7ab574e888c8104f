package solver

import "sudoku_core_go/internal/types"

// CountSolutions counts distinct completions of g, stopping as soon as
// limit is reached. The caller's grid is never touched: the search runs
// on a private copy. Candidates are tried in fixed 1-9 order; order only
// changes which completions are found first, never whether the count
// saturates, so counting stays deterministic.
//
// Uniqueness checks call this with limit = 2: a return of 1 means the
// puzzle has exactly one solution, 2 means at least two.
func CountSolutions(g *types.Grid, limit int) int {
	if limit <= 0 {
		return 0
	}
	work := *g
	return countFrom(&work, 0, limit)
}

// countFrom threads the running count through the recursion explicitly
// and returns the updated total.
func countFrom(g *types.Grid, found, limit int) int {
	if found >= limit {
		return found
	}

	row, col, ok := findEmpty(g)
	if !ok {
		return found + 1
	}

	for digit := 1; digit <= types.Size; digit++ {
		if CanPlace(g, row, col, digit) {
			g[row][col] = digit
			found = countFrom(g, found, limit)
			g[row][col] = types.Empty
			if found >= limit {
				break
			}
		}
	}

	return found
}
