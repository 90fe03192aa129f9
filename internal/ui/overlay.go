//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"
	"life-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type communityLabeler interface {
	CommunityLabels() ([]int, int)
}

// Overlay colours every community of alive cells on top of the base view.
// Key C toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	show    bool
	painter *render.GridPainter
	palette []color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:     sim,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H),
		palette: render.CommunityPalette(paletteSize),
	}
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.show = !o.show
	}
}

// Draw paints community colours when enabled and supported by the sim.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	labeler, ok := o.sim.(communityLabeler)
	if !ok {
		return
	}
	labels, _ := labeler.CommunityLabels()
	o.painter.BlitLabels(screen, labels, o.palette, color.RGBA{}, o.scale)
}

const paletteSize = 24
