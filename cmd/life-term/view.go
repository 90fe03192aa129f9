package main

import (
	"fmt"

	"life-ca/internal/render"
	"life-ca/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

// view draws a Life grid onto a tcell screen, two columns per cell, with a
// status line below the grid.
type view struct {
	screen      tcell.Screen
	sim         *life.Life
	communities bool
	paused      bool
	palette     []tcell.Color
}

func newView(screen tcell.Screen, sim *life.Life) *view {
	palette := render.CommunityPalette(paletteSize)
	colors := make([]tcell.Color, len(palette))
	for i, c := range palette {
		colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return &view{screen: screen, sim: sim, palette: colors}
}

var (
	deadStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	aliveStyle = tcell.StyleDefault.Background(tcell.ColorWhite)
)

func (v *view) draw() {
	g := v.sim.Grid()
	var labels []int
	if v.communities {
		labels, _ = v.sim.CommunityLabels()
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			style := deadStyle
			idx := g.Index(r, c)
			if v.sim.Cells()[idx] != 0 {
				style = aliveStyle
				if labels != nil && labels[idx] >= 0 {
					style = tcell.StyleDefault.Background(v.palette[labels[idx]%len(v.palette)])
				}
			}
			v.screen.SetContent(c*2, r, ' ', nil, style)
			v.screen.SetContent(c*2+1, r, ' ', nil, style)
		}
	}
	v.drawStatus(g.Rows())
	v.screen.Show()
}

func (v *view) drawStatus(y int) {
	w, _ := v.screen.Size()
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d  alive %d  communities %d  %s  [space] pause [n] step [r] reset [c] colours [q] quit",
		v.sim.Generation(), v.sim.TotalAliveCells(), v.sim.Communities(), state)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		v.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
	}
}

// handleKey applies a key press and reports whether the viewer should exit.
func (v *view) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.sim.NextGeneration()
	case 'r':
		v.sim.Reset(0)
	case 'c':
		v.communities = !v.communities
	}
	return false
}

const paletteSize = 16
