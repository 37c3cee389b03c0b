// Package view is the textual viewer/controller layer. Viewers render cell
// state as glyphs, refresh on mutation events, and follow the population
// across generations by re-binding to descendants on every tick.
package view

import (
	"cellgame/pkg/cell"
	"cellgame/pkg/event"
)

// CellView renders one cell as its kind's glyph and keeps the rendering
// current through mutation events.
type CellView struct {
	cell *cell.Cell
	str  string
}

// NewCell binds a viewer to c and subscribes it to the mutation topic.
func NewCell(c *cell.Cell, bus *event.Bus) *CellView {
	v := &CellView{}
	v.Bind(c)
	bus.Subscribe(event.TopicMutation, v.Refresh)
	return v
}

// Bind points the viewer at a (different) cell and refreshes.
func (v *CellView) Bind(c *cell.Cell) {
	v.cell = c
	v.Refresh()
}

// Cell returns the currently bound cell.
func (v *CellView) Cell() *cell.Cell { return v.cell }

// Refresh re-renders the bound cell's state.
func (v *CellView) Refresh() {
	v.str = v.cell.Kind().Glyph(v.cell.State())
}

// Mutate applies the cell's regeneration rule through the viewer.
func (v *CellView) Mutate() { v.cell.Mutate() }

// Update assigns an explicit state through the viewer.
func (v *CellView) Update(val cell.Value) error { return v.cell.Update(val) }

func (v *CellView) String() string { return v.str }
