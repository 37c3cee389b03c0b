package cellnet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cellgame/pkg/cell"
	"cellgame/pkg/event"
)

func identities(cells []*cell.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.ID()
	}
	return out
}

func TestGridNeighborCounts(t *testing.T) {
	g := NewGrid(cell.Boolean, 3, 3, nil)
	g.WireNeighbors()

	require.Len(t, g.At(1, 1).Neighbors(), 8, "interior")
	for _, rc := range [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		require.Len(t, g.At(rc[0], rc[1]).Neighbors(), 3, "corner %v", rc)
	}
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		require.Len(t, g.At(rc[0], rc[1]).Neighbors(), 5, "edge %v", rc)
	}
}

func TestGridCompassOrder(t *testing.T) {
	g := NewGrid(cell.Boolean, 3, 3, nil)
	g.WireNeighbors()

	require.Equal(t,
		[]string{"(0,1)", "(0,2)", "(1,2)", "(2,2)", "(2,1)", "(2,0)", "(1,0)", "(0,0)"},
		identities(g.At(1, 1).Neighbors()))
	require.Equal(t,
		[]string{"(0,1)", "(1,1)", "(1,0)"},
		identities(g.At(0, 0).Neighbors()))
}

func TestGridListIsRowMajor(t *testing.T) {
	g := NewGrid(cell.Integer, 4, 5, nil)
	flat := g.List()
	require.Len(t, flat, 20)
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			require.Same(t, g.At(r, c), flat[r*5+c])
		}
	}
}

func TestGridListRebuildRoundTrip(t *testing.T) {
	g := NewGrid(cell.Integer, 4, 5, nil)
	before := make([][]*cell.Cell, 4)
	for r := range before {
		before[r] = make([]*cell.Cell, 5)
		for c := range before[r] {
			before[r][c] = g.At(r, c)
		}
	}

	require.NoError(t, g.Rebuild(g.List()))

	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			require.Same(t, before[r][c], g.At(r, c))
		}
	}
}

func TestGridRebuildRejectsShapeMismatch(t *testing.T) {
	g := NewGrid(cell.Integer, 3, 3, nil)
	require.ErrorIs(t, g.Rebuild(g.List()[:8]), ErrShape)
}

func TestGridTickTogglesBooleans(t *testing.T) {
	bus := event.NewBus()
	g := NewGrid(cell.Boolean, 3, 3, bus)
	net := New(g, bus)

	for r := 0; r < 3; r++ {
		require.NoError(t, g.At(r, 1).Update(true))
	}

	require.NoError(t, net.Tick(1))

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := c != 1
			require.Equal(t, want, g.At(r, c).State(), "cell (%d,%d)", r, c)
			require.Equal(t, 1, g.At(r, c).Generation())
		}
	}
}

func TestGridTickKeepsTopology(t *testing.T) {
	bus := event.NewBus()
	g := NewGrid(cell.Boolean, 3, 3, bus)
	net := New(g, bus)

	require.NoError(t, net.Tick(2))

	require.Len(t, g.At(1, 1).Neighbors(), 8)
	require.Len(t, g.At(0, 0).Neighbors(), 3)
	for _, c := range net.Cells() {
		for _, nb := range c.Neighbors() {
			require.Equal(t, net.Generation(), nb.Generation())
		}
	}
	require.Equal(t, "(2,2)", g.At(2, 2).ID())
}
