package cellnet

import (
	"github.com/cockroachdb/errors"

	"cellgame/pkg/cell"
)

// Triangle is the three-cell complete graph: every cell is a mutual
// neighbor of the other two. The wiring is set once; tick rewiring carries
// it onto each new generation.
type Triangle struct {
	cells [3]*cell.Cell
}

// NewTriangle builds the triangle layout over three existing cells.
func NewTriangle(a, b, c *cell.Cell) *Triangle {
	return &Triangle{cells: [3]*cell.Cell{a, b, c}}
}

// WireNeighbors links each cell to the other two, in slot order.
func (t *Triangle) WireNeighbors() {
	for i := range t.cells {
		for j := range t.cells {
			if i != j {
				t.cells[i].AddNeighbor(t.cells[j])
			}
		}
	}
}

// List returns the three cells in slot order.
func (t *Triangle) List() []*cell.Cell {
	return []*cell.Cell{t.cells[0], t.cells[1], t.cells[2]}
}

// Rebuild installs a new generation of exactly three cells.
func (t *Triangle) Rebuild(cells []*cell.Cell) error {
	if len(cells) != len(t.cells) {
		return errors.Wrapf(ErrShape, "got %d cells for a triangle", len(cells))
	}
	copy(t.cells[:], cells)
	return nil
}
