// Package cell implements the lineage-tracking automaton cell: a unit of
// state that is immutable in its lineage once born, derives exactly one
// descendant per generation, and regenerates under its kind's rule.
package cell

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"cellgame/pkg/event"
)

// Contract violations surfaced by lineage and mutation operations. These
// are programming errors, not recoverable runtime conditions; callers get
// them immediately and nothing is partially applied.
var (
	// ErrRetired reports a second derivation from a cell that already has
	// a descendant.
	ErrRetired = errors.New("cell already has a descendant")
	// ErrStateType reports a state value whose Go type does not match the
	// cell's kind.
	ErrStateType = errors.New("state value does not match cell kind")
	// ErrDanglingNeighbor reports a rewire against a neighbor that has not
	// been derived yet.
	ErrDanglingNeighbor = errors.New("neighbor has no descendant")
)

// Cell is one automaton unit at one generation. Lineage fields are written
// once: ancestor at birth, descendant when the next generation is derived
// from it. Neighbors are wired by the owning net, never by the cell itself.
type Cell struct {
	kind       *Kind
	id         string
	state      Value
	generation int
	neighbors  []*Cell
	ancestor   *Cell
	descendant *Cell
	bus        *event.Bus
}

// Option configures a new cell.
type Option func(*Cell)

// WithBus attaches the bus the cell publishes mutation events on.
func WithBus(b *event.Bus) Option {
	return func(c *Cell) { c.bus = b }
}

// New creates a generation-zero cell holding the kind's zero state.
func New(kind *Kind, id string, opts ...Option) *Cell {
	c := &Cell{kind: kind, id: id, state: kind.Zero}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewInteger creates a generation-zero integer cell with the given state.
func NewInteger(id string, state int, opts ...Option) *Cell {
	c := New(Integer, id, opts...)
	c.state = state
	return c
}

// NewBoolean creates a generation-zero boolean cell with the given state.
func NewBoolean(id string, state bool, opts ...Option) *Cell {
	c := New(Boolean, id, opts...)
	c.state = state
	return c
}

// ID returns the cell's identity, stable across the lineage by default.
func (c *Cell) ID() string { return c.id }

// Kind returns the cell's kind.
func (c *Cell) Kind() *Kind { return c.kind }

// State returns the current state value.
func (c *Cell) State() Value { return c.state }

// Generation returns the generation the cell was born into.
func (c *Cell) Generation() int { return c.generation }

// Neighbors exposes the neighbor list. Callers must not mutate it.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// Ancestor returns the cell this one was derived from, or nil at
// generation zero.
func (c *Cell) Ancestor() *Cell { return c.ancestor }

// Descendant returns the cell derived from this one, or nil while the cell
// is still live.
func (c *Cell) Descendant() *Cell { return c.descendant }

// AddNeighbor appends other to the neighbor list. No de-duplication and no
// symmetry enforcement; the topology builder wires both directions.
func (c *Cell) AddNeighbor(other *Cell) {
	c.neighbors = append(c.neighbors, other)
}

// Mutate applies the kind's regeneration rule in place against the current
// neighbor states. Lineage fields are untouched.
func (c *Cell) Mutate() {
	c.state = c.kind.Rule(c.state, states(c.neighbors))
	c.bus.Publish(event.TopicMutation)
}

// Update assigns an explicit state, bypassing the regeneration rule.
// Values of the wrong Go type are rejected, not coerced.
func (c *Cell) Update(v Value) error {
	if err := c.kind.Validate(v); err != nil {
		return err
	}
	c.state = v
	c.bus.Publish(event.TopicMutation)
	return nil
}

// Clone derives the next-generation cell: same kind and state, generation
// advanced by one, lineage linked both ways, neighbors left empty for the
// owning net to wire. Identity carries over unless newID is given. Cloning
// a retired cell violates the at-most-one-descendant contract and fails
// with ErrRetired.
func (c *Cell) Clone(newID ...string) (*Cell, error) {
	if c.descendant != nil {
		return nil, errors.Wrapf(ErrRetired, "clone %s", c)
	}
	child := &Cell{
		kind:       c.kind,
		id:         c.id,
		state:      c.state,
		generation: c.generation + 1,
		ancestor:   c,
		bus:        c.bus,
	}
	if len(newID) > 0 {
		child.id = newID[0]
	}
	c.descendant = child
	return child, nil
}

// NextGen clones the cell and applies the regeneration rule to the clone
// against this cell's pre-tick neighbor states. The returned descendant is
// therefore already regenerated before any rewiring happens.
func (c *Cell) NextGen(newID ...string) (*Cell, error) {
	child, err := c.Clone(newID...)
	if err != nil {
		return nil, err
	}
	child.state = c.kind.Rule(c.state, states(c.neighbors))
	return child, nil
}

// Rewire points the cell's neighbors at the descendants of its ancestor's
// neighbors. Every ancestor neighbor must already be retired; a live one
// means the caller rewired before deriving the whole generation.
func (c *Cell) Rewire() error {
	if c.ancestor == nil {
		return nil
	}
	next := make([]*Cell, len(c.ancestor.neighbors))
	for i, n := range c.ancestor.neighbors {
		d := n.descendant
		if d == nil {
			return errors.Wrapf(ErrDanglingNeighbor, "rewire %s against %s", c, n)
		}
		next[i] = d
	}
	c.neighbors = next
	return nil
}

// String renders the cell as "<id><gen>".
func (c *Cell) String() string {
	return fmt.Sprintf("%s<%d>", c.id, c.generation)
}

// Dump renders identity, generation, lineage and neighbors on one line,
// for tests and debugging.
func (c *Cell) Dump() string {
	return fmt.Sprintf("%s A: %s D: %s N: %s",
		c, repr(c.ancestor), repr(c.descendant), reprList(c.neighbors))
}

func repr(c *Cell) string {
	if c == nil {
		return "None"
	}
	return c.String()
}

func reprList(cells []*Cell) string {
	if len(cells) == 0 {
		return "None"
	}
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func states(cells []*Cell) []Value {
	vs := make([]Value, len(cells))
	for i, c := range cells {
		vs[i] = c.state
	}
	return vs
}
