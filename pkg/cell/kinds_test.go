package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerRuleSumsNeighbors(t *testing.T) {
	c := NewInteger("Cell 4", 0)
	c.AddNeighbor(NewInteger("Cell 1", 1))
	c.AddNeighbor(NewInteger("Cell 2", 5))
	c.AddNeighbor(NewInteger("Cell 3", 10))

	c.Mutate()
	require.Equal(t, 16, c.State())

	// Mutating again reads the (unchanged) neighbor states, not its own.
	c.Mutate()
	require.Equal(t, 16, c.State())
}

func TestIntegerDisplay(t *testing.T) {
	require.Equal(t, "0", Integer.Glyph(0))
	require.Equal(t, "16", Integer.Glyph(16))
	require.Equal(t, "16", Integer.Format(16))
}

func TestBooleanToggleIgnoresNeighbors(t *testing.T) {
	c := NewBoolean("Cell 1", false)
	c.AddNeighbor(NewBoolean("Cell 2", true))
	c.AddNeighbor(NewBoolean("Cell 3", true))

	c.Mutate()
	require.Equal(t, true, c.State())
	c.Mutate()
	require.Equal(t, false, c.State())
}

func TestBooleanDisplay(t *testing.T) {
	require.Equal(t, "*", Boolean.Glyph(true))
	require.Equal(t, "-", Boolean.Glyph(false))
	require.Equal(t, "true", Boolean.Format(true))
	require.Equal(t, "false", Boolean.Format(false))
}

func TestKindValidate(t *testing.T) {
	require.NoError(t, Integer.Validate(7))
	require.ErrorIs(t, Integer.Validate("7"), ErrStateType)
	require.NoError(t, Boolean.Validate(true))
	require.ErrorIs(t, Boolean.Validate(1), ErrStateType)
}

func TestRegistry(t *testing.T) {
	k, ok := Lookup("integer")
	require.True(t, ok)
	require.Same(t, Integer, k)

	k, ok = Lookup("boolean")
	require.True(t, ok)
	require.Same(t, Boolean, k)

	_, ok = Lookup("quantum")
	require.False(t, ok)

	require.Contains(t, Kinds(), "integer")
	require.Contains(t, Kinds(), "boolean")
}
