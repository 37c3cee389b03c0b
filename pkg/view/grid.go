package view

import (
	"fmt"
	"strings"

	"cellgame/pkg/cell"
	"cellgame/pkg/cellnet"
	"cellgame/pkg/event"
)

// GridView is the viewer/controller for a Grid: one CellView per position,
// re-bound to each cell's descendant when the owning net ticks.
type GridView struct {
	grid  *cellnet.Grid
	views [][]*CellView
}

// NewGrid builds viewers for every grid position and subscribes the view
// to the tick topic.
func NewGrid(grid *cellnet.Grid, bus *event.Bus) *GridView {
	gv := &GridView{grid: grid, views: make([][]*CellView, grid.Rows())}
	for r := 0; r < grid.Rows(); r++ {
		gv.views[r] = make([]*CellView, grid.Cols())
		for c := 0; c < grid.Cols(); c++ {
			gv.views[r][c] = NewCell(grid.At(r, c), bus)
		}
	}
	bus.Subscribe(event.TopicTick, gv.advance)
	return gv
}

// advance re-binds every viewer to its cell's freshly derived descendant.
func (gv *GridView) advance() {
	for _, row := range gv.views {
		for _, v := range row {
			if d := v.Cell().Descendant(); d != nil {
				v.Bind(d)
			}
		}
	}
}

// At returns the viewer at a grid position.
func (gv *GridView) At(row, col int) *CellView { return gv.views[row][col] }

// MutateCell applies the regeneration rule to one cell in place.
func (gv *GridView) MutateCell(row, col int) {
	gv.views[row][col].Mutate()
}

// UpdateCell assigns an explicit state to one cell.
func (gv *GridView) UpdateCell(row, col int, val cell.Value) error {
	return gv.views[row][col].Update(val)
}

// String renders the framed textual view of the grid: a dashed rule, a
// column header, one indexed line per row of glyphs, and a closing rule.
func (gv *GridView) String() string {
	var b strings.Builder
	rule := strings.Repeat("---", gv.grid.Cols()+1)
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteString("   ")
	for c := 0; c < gv.grid.Cols(); c++ {
		fmt.Fprintf(&b, " %d ", c)
	}
	b.WriteByte('\n')
	for r, row := range gv.views {
		fmt.Fprintf(&b, " %d ", r)
		for _, v := range row {
			b.WriteString(" ")
			b.WriteString(v.String())
			b.WriteString(" ")
		}
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	return b.String()
}
