//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"cellgame/pkg/cellnet"
)

// GridPainter renders a grid's cell states into a single scaled RGBA
// image.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells []uint8
}

// NewGridPainter allocates a painter for a w×h grid.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit snapshots the grid's states and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *cellnet.Grid, on, off color.Color, scale int) {
	gp.cells = Snapshot(gp.cells, g)
	if len(gp.cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, gp.cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
