// Package cellnet advances whole populations of cells generation by
// generation. The arrangement of a population (its shape and neighbor
// topology) is an injected Layout strategy; the net itself only knows the
// flatten / derive / rewire / reassemble cycle.
package cellnet

import (
	"github.com/cockroachdb/errors"

	"cellgame/pkg/cell"
	"cellgame/pkg/event"
)

// ErrShape reports a population whose size does not match the layout's
// declared shape.
var ErrShape = errors.New("cell count does not match layout shape")

// Layout owns the arrangement of a net's population: the initial neighbor
// wiring, the flattening into tick order, and the reassembly of a freshly
// derived generation.
type Layout interface {
	// List returns the population flattened into tick order.
	List() []*cell.Cell
	// Rebuild installs a new generation given in the same order List uses.
	Rebuild([]*cell.Cell) error
	// WireNeighbors creates the initial neighbor links. Called once, at
	// net construction.
	WireNeighbors()
}

// Net advances a population of cells one generation at a time. Tick is not
// reentrant and there is no internal locking; callers keep at most one
// tick in flight per net.
type Net struct {
	layout     Layout
	generation int
	bus        *event.Bus
}

// New wires the layout's initial neighbor graph and returns a net at
// generation zero.
func New(layout Layout, bus *event.Bus) *Net {
	layout.WireNeighbors()
	return &Net{layout: layout, bus: bus}
}

// Generation returns the generation number shared by the current
// population.
func (n *Net) Generation() int { return n.generation }

// Cells returns the current population in tick order.
func (n *Net) Cells() []*cell.Cell { return n.layout.List() }

// Layout returns the injected topology strategy.
func (n *Net) Layout() Layout { return n.layout }

// Tick derives and installs the next generation the given number of times
// (at least once). Each pass derives every cell against its pre-tick
// neighbor states, rewires the new generation onto itself, reassembles the
// native shape, increments the generation counter and publishes one tick
// event. A failed pass leaves the net in an undefined state; there is no
// partial-tick recovery.
func (n *Net) Tick(generations int) error {
	if generations < 1 {
		generations = 1
	}
	for ; generations > 0; generations-- {
		if err := n.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Net) advance() error {
	current := n.layout.List()

	// The whole new generation is built from clones before any neighbor
	// link moves, so derivation order cannot leak between cells.
	next := make([]*cell.Cell, len(current))
	for i, c := range current {
		child, err := c.NextGen()
		if err != nil {
			return errors.Wrapf(err, "advance generation %d", n.generation)
		}
		next[i] = child
	}
	for _, child := range next {
		if err := child.Rewire(); err != nil {
			return errors.Wrapf(err, "advance generation %d", n.generation)
		}
	}
	if err := n.layout.Rebuild(next); err != nil {
		return errors.Wrapf(err, "advance generation %d", n.generation)
	}
	n.generation++
	n.bus.Publish(event.TopicTick)
	return nil
}
