package app

import (
	"cellgame/pkg/cell"
	"cellgame/pkg/cellnet"
	"cellgame/pkg/rng"
)

// SeedGrid randomizes the grid's initial generation deterministically from
// seed. Boolean cells get a coin flip, integer cells 0 or 1; other kinds
// keep their zero state.
func SeedGrid(g *cellnet.Grid, seed int64) error {
	r := rng.New(seed)
	for _, c := range g.List() {
		var v cell.Value
		switch c.Kind() {
		case cell.Boolean:
			v = r.Bool()
		case cell.Integer:
			v = r.IntN(2)
		default:
			continue
		}
		if err := c.Update(v); err != nil {
			return err
		}
	}
	return nil
}
