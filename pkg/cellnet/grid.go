package cellnet

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"cellgame/pkg/cell"
	"cellgame/pkg/event"
)

// Grid arranges cells in a rows×cols rectangle. Each cell neighbors the up
// to eight cells adjacent on the compass points; edges clip, nothing
// wraps. Flattening order is row-major.
type Grid struct {
	rows, cols int
	cells      [][]*cell.Cell
}

// NewGrid populates a rows×cols grid with cells of the given kind. Cell
// identities are "(row,col)" and stay stable across generations.
func NewGrid(kind *cell.Kind, rows, cols int, bus *event.Bus) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: make([][]*cell.Cell, rows)}
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]*cell.Cell, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = cell.New(kind, fmt.Sprintf("(%d,%d)", r, c), cell.WithBus(bus))
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the current-generation cell at (row, col).
func (g *Grid) At(row, col int) *cell.Cell { return g.cells[row][col] }

// compass holds the neighbor offsets in wiring order: N, NE, E, SE, S, SW,
// W, NW. The order is fixed for display reproducibility only; the rules do
// not depend on it.
var compass = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// WireNeighbors links every cell to its in-bounds compass neighbors.
// Corner cells end up with 3 neighbors, edge cells with 5, interior cells
// with 8.
func (g *Grid) WireNeighbors() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			for _, d := range compass {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
					continue
				}
				g.cells[r][c].AddNeighbor(g.cells[nr][nc])
			}
		}
	}
}

// List flattens the grid row-major.
func (g *Grid) List() []*cell.Cell {
	flat := make([]*cell.Cell, 0, g.rows*g.cols)
	for _, row := range g.cells {
		flat = append(flat, row...)
	}
	return flat
}

// Rebuild reassembles a row-major list into the rows×cols rectangle. A
// count mismatch is a topology violation and aborts the installing tick.
func (g *Grid) Rebuild(cells []*cell.Cell) error {
	if len(cells) != g.rows*g.cols {
		return errors.Wrapf(ErrShape, "got %d cells for a %dx%d grid", len(cells), g.rows, g.cols)
	}
	for r := 0; r < g.rows; r++ {
		copy(g.cells[r], cells[r*g.cols:(r+1)*g.cols])
	}
	return nil
}
