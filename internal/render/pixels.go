package render

import (
	"image/color"

	"cellgame/pkg/cellnet"
)

// Snapshot fills buf with 0/1 values, one per grid cell in row-major
// order, marking every cell whose state differs from its kind's zero
// state. The returned slice reuses buf when it is large enough.
func Snapshot(buf []uint8, g *cellnet.Grid) []uint8 {
	cells := g.List()
	if cap(buf) < len(cells) {
		buf = make([]uint8, len(cells))
	}
	buf = buf[:len(cells)]
	for i, c := range cells {
		if c.State() != c.Kind().Zero {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
	return buf
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
