package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"

	"cellgame/pkg/cell"
	"cellgame/pkg/cellnet"
)

func TestConfigBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-rows=4", "-cols=7", "-kind=integer", "-random=false", "-seed=99",
	}))
	require.Equal(t, 4, cfg.Rows)
	require.Equal(t, 7, cfg.Cols)
	require.Equal(t, "integer", cfg.Kind)
	require.False(t, cfg.Random)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, 24, cfg.Scale, "unset flags keep defaults")
}

func TestSeedGridIsDeterministic(t *testing.T) {
	g1 := cellnet.NewGrid(cell.Boolean, 4, 4, nil)
	g2 := cellnet.NewGrid(cell.Boolean, 4, 4, nil)

	require.NoError(t, SeedGrid(g1, 42))
	require.NoError(t, SeedGrid(g2, 42))

	a, b := g1.List(), g2.List()
	for i := range a {
		require.Equal(t, a[i].State(), b[i].State())
	}
}
