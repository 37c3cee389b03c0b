//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpText = "[space] pause  [n] step  [r] reset  [s] reseed  [h] help  [q] quit"

// Overlay draws the generation counter and key help on top of the grid.
type Overlay struct {
	showHelp   bool
	generation int
}

// NewOverlay returns an overlay with the help visible.
func NewOverlay() *Overlay {
	return &Overlay{showHelp: true}
}

// SetGeneration updates the generation shown in the corner.
func (o *Overlay) SetGeneration(gen int) {
	o.generation = gen
}

// Update toggles the help on the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay text.
func (o *Overlay) Draw(screen *ebiten.Image) {
	text := fmt.Sprintf("gen %d", o.generation)
	if o.showHelp {
		text += "\n" + helpText
	}
	ebitenutil.DebugPrint(screen, text)
}
