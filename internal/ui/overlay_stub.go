//go:build !ebiten

package ui

// Overlay is a placeholder for the headless build.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// SetGeneration is a no-op placeholder.
func (o *Overlay) SetGeneration(int) {}

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}
