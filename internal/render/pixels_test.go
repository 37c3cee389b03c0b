package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"cellgame/pkg/cell"
	"cellgame/pkg/cellnet"
)

func TestSnapshotMarksNonZeroStates(t *testing.T) {
	g := cellnet.NewGrid(cell.Boolean, 2, 3, nil)
	require.NoError(t, g.At(0, 1).Update(true))
	require.NoError(t, g.At(1, 2).Update(true))

	buf := Snapshot(nil, g)
	require.Equal(t, []uint8{0, 1, 0, 0, 0, 1}, buf)
}

func TestSnapshotReusesBuffer(t *testing.T) {
	g := cellnet.NewGrid(cell.Integer, 2, 2, nil)
	require.NoError(t, g.At(0, 0).Update(7))

	buf := make([]uint8, 4)
	out := Snapshot(buf, g)
	require.Equal(t, []uint8{1, 0, 0, 0}, out)
	require.Equal(t, &buf[0], &out[0])
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	require.Equal(t, []byte{255, 255, 255, 255, 0, 0, 0, 255}, buf)
}
