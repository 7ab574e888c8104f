package visualizer

import (
	"fmt"
	"io"
	"strings"

	"sudoku_core_go/internal/types"
)

// Visualizer renders grids with box borders to a writer.
type Visualizer struct {
	out io.Writer
}

func New(out io.Writer) *Visualizer {
	return &Visualizer{out: out}
}

// PrintGrid renders a bare grid, dots for empty cells.
func (v *Visualizer) PrintGrid(g *types.Grid) {
	v.print(g, nil)
}

// PrintPuzzle renders the puzzle grid with givens in bold, so pre-filled
// cells are distinguishable from anything a caller filled in later.
func (v *Visualizer) PrintPuzzle(p *types.Puzzle) {
	v.print(&p.Grid, p)
}

// PrintSolution renders the solution grid.
func (v *Visualizer) PrintSolution(p *types.Puzzle) {
	v.print(&p.Solution, nil)
}

const (
	boldOn  = "\033[1m"
	boldOff = "\033[0m"
)

func (v *Visualizer) print(g *types.Grid, p *types.Puzzle) {
	v.printHorizontalBorder()

	for r := 0; r < types.Size; r++ {
		fmt.Fprint(v.out, "│ ")
		for c := 0; c < types.Size; c++ {
			switch {
			case g[r][c] == types.Empty:
				fmt.Fprint(v.out, ".")
			case p != nil && p.IsGiven(r, c):
				fmt.Fprintf(v.out, "%s%d%s", boldOn, g[r][c], boldOff)
			default:
				fmt.Fprintf(v.out, "%d", g[r][c])
			}
			fmt.Fprint(v.out, " ")

			if (c+1)%types.BoxSize == 0 && c < types.Size-1 {
				fmt.Fprint(v.out, "│ ")
			}
		}
		fmt.Fprintln(v.out, "│")

		if (r+1)%types.BoxSize == 0 && r < types.Size-1 {
			v.printHorizontalBorder()
		}
	}

	v.printHorizontalBorder()
}

func (v *Visualizer) printHorizontalBorder() {
	fmt.Fprint(v.out, "├")
	for i := 0; i < types.Size; i++ {
		fmt.Fprint(v.out, strings.Repeat("─", 2))
		if (i+1)%types.BoxSize == 0 && i < types.Size-1 {
			fmt.Fprint(v.out, "┼")
		}
	}
	fmt.Fprintln(v.out, "┤")
}
