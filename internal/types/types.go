package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the board edge length; boards are always Size x Size.
	Size = 9
	// BoxSize is the edge length of one sub-box.
	BoxSize = 3
	// CellCount is the total number of cells on a board.
	CellCount = Size * Size
	// Empty marks a cell without a digit.
	Empty = 0
)

// Grid is a 9x9 cell matrix. A cell holds a digit 1-9 or Empty.
// Value semantics: assigning a Grid copies all cells, which is how
// the solver and generator take private working copies.
type Grid [Size][Size]int

// Position identifies a cell by row and column, both in [0,9).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Difficulty selects how many cells the generator clears.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Removals returns the target number of cells to clear for the tier.
func (d Difficulty) Removals() int {
	switch d {
	case Medium:
		return 50
	case Hard:
		return 55
	default:
		return 40
	}
}

// ParseDifficulty maps a user-supplied string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, nil
	case Medium:
		return Medium, nil
	case Hard:
		return Hard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Puzzle is a generated puzzle together with its solution and the
// positions that were left filled as givens.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	Givens     []Position `json:"givens"`
	Difficulty Difficulty `json:"difficulty"`
}

// IsGiven reports whether (row, col) was pre-filled at generation time.
func (p *Puzzle) IsGiven(row, col int) bool {
	for _, g := range p.Givens {
		if g.Row == row && g.Col == col {
			return true
		}
	}
	return false
}

// ToJSON converts the puzzle to JSON bytes.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON creates a Puzzle from JSON bytes.
func FromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	err := json.Unmarshal(data, &p)
	return &p, err
}

// ParseGrid reads a grid from an 81-character line, row-major.
// '1'-'9' fill a cell; '0', '.' and ' ' leave it empty.
func ParseGrid(line string) (*Grid, error) {
	line = strings.TrimSpace(line)
	if len(line) != CellCount {
		return nil, fmt.Errorf("grid line must be %d characters, got %d", CellCount, len(line))
	}
	var g Grid
	for i, ch := range line {
		switch {
		case ch >= '1' && ch <= '9':
			g[i/Size][i%Size] = int(ch - '0')
		case ch == '0' || ch == '.' || ch == ' ':
			// already Empty
		default:
			return nil, fmt.Errorf("invalid cell character %q at offset %d", ch, i)
		}
	}
	return &g, nil
}

// String renders the grid as an 81-character line, '.' for empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(CellCount)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[r][c]))
			}
		}
	}
	return b.String()
}

// FilledCells returns the number of non-empty cells.
func (g *Grid) FilledCells() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// ErrBadDigit is returned by SetCell for digits outside 1-9.
var ErrBadDigit = errors.New("digit must be between 1 and 9")

// SetCell writes a digit into the grid with bounds checking.
func (g *Grid) SetCell(row, col, digit int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("position (%d,%d) out of range", row, col)
	}
	if digit != Empty && (digit < 1 || digit > Size) {
		return ErrBadDigit
	}
	g[row][col] = digit
	return nil
}
