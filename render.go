package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/dashcore/ecs/component"
	"github.com/milk9111/dashcore/level"
	"github.com/milk9111/dashcore/physics"
)

var (
	backgroundColor = colornames.Midnightblue
	solidColor      = colornames.Slategray
	solidEdgeColor  = colornames.Lightslategray
)

var dashColors = map[physics.DashState]color.Color{
	physics.DashReady:     colornames.Crimson,
	physics.DashStarted:   colornames.Orange,
	physics.Dashing:       colornames.Gold,
	physics.DashFinished:  colornames.Orange,
	physics.DashCancelled: colornames.Gray,
}

// view maps y-up world space onto the screen around a camera center.
type view struct {
	center cp.Vector
	zoom   float64
	w, h   float64 // screen pixels
}

func newView(cam *component.CameraState, w, h int) view {
	v := view{zoom: 1, w: float64(w), h: float64(h)}
	if cam != nil && cam.Ready {
		v.center = cam.Center
		if cam.Zoom > 0 {
			v.zoom = cam.Zoom
		}
	}
	return v
}

func (v view) bounds() cp.BB {
	hw := v.w / v.zoom / 2
	hh := v.h / v.zoom / 2
	return cp.NewBBForExtents(v.center, hw, hh)
}

// toScreen returns the screen position of the top-left corner of bb.
func (v view) toScreen(bb cp.BB) (x, y, w, h float32) {
	x = float32((bb.L-v.center.X)*v.zoom + v.w/2)
	y = float32((v.center.Y-bb.T)*v.zoom + v.h/2)
	w = float32((bb.R - bb.L) * v.zoom)
	h = float32((bb.T - bb.B) * v.zoom)
	return x, y, w, h
}

func drawLevel(screen *ebiten.Image, v view, g *level.Grid) {
	screen.Fill(backgroundColor)
	if g == nil {
		return
	}
	visible := v.bounds()
	for _, s := range g.Solids() {
		bb := s.Bounds()
		if !visible.Intersects(bb) {
			continue
		}
		x, y, w, h := v.toScreen(bb)
		vector.FillRect(screen, x, y, w, h, solidColor, false)
		vector.StrokeRect(screen, x, y, w, h, 1, solidEdgeColor, false)
	}
}

func drawPlayer(screen *ebiten.Image, v view, p *component.Player, half cp.Vector) {
	if p == nil {
		return
	}
	c, ok := dashColors[p.Dash.State]
	if !ok {
		c = colornames.White
	}
	x, y, w, h := v.toScreen(cp.NewBBForExtents(p.Body.Position, half.X, half.Y))
	vector.FillRect(screen, x, y, w, h, c, false)
}
