//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update([]string) {}

// Frames always reports zero in headless builds.
func (o *Overlay) Frames() uint64 { return 0 }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
