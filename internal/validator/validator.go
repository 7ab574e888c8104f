package validator

import "sudoku_core_go/internal/types"

// IsComplete reports whether every cell holds a digit.
func IsComplete(g *types.Grid) bool {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if g[r][c] == types.Empty {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether every row, column and box is exactly the
// digit set 1-9. A unit containing an empty cell fails, since it cannot
// equal the full set. Used for end-of-game checks on player-filled
// boards, independent of the solver.
func IsValid(g *types.Grid) bool {
	// rows
	for r := 0; r < types.Size; r++ {
		mask := 0
		for c := 0; c < types.Size; c++ {
			bit, ok := digitBit(g[r][c])
			if !ok || mask&bit != 0 {
				return false
			}
			mask |= bit
		}
	}

	// columns
	for c := 0; c < types.Size; c++ {
		mask := 0
		for r := 0; r < types.Size; r++ {
			bit, ok := digitBit(g[r][c])
			if !ok || mask&bit != 0 {
				return false
			}
			mask |= bit
		}
	}

	// boxes
	for boxRow := 0; boxRow < types.Size; boxRow += types.BoxSize {
		for boxCol := 0; boxCol < types.Size; boxCol += types.BoxSize {
			mask := 0
			for r := boxRow; r < boxRow+types.BoxSize; r++ {
				for c := boxCol; c < boxCol+types.BoxSize; c++ {
					bit, ok := digitBit(g[r][c])
					if !ok || mask&bit != 0 {
						return false
					}
					mask |= bit
				}
			}
		}
	}

	return true
}

// digitBit maps a digit 1-9 to its mask bit; anything else is invalid.
func digitBit(v int) (int, bool) {
	if v < 1 || v > types.Size {
		return 0, false
	}
	return 1 << v, true
}
