package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/common"
	"github.com/milk9111/dashcore/ecs"
	"github.com/milk9111/dashcore/ecs/component"
	"github.com/milk9111/dashcore/level"
)

// CameraSystem moves each camera toward its target player and keeps the
// view inside the level bounds.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	follows := w.CameraFollows()
	for _, id := range follows.Entities() {
		camEntity, ok := w.EntityByID(id)
		if !ok {
			continue
		}
		follow, _ := follows.Get(id)
		target, ok := w.EntityByID(follow.TargetEntity)
		if !ok {
			continue
		}
		player := w.GetPlayer(target)
		if player == nil {
			continue
		}

		state := w.GetCameraState(camEntity)
		if state == nil {
			w.SetCameraState(camEntity, component.CameraState{})
			state = w.GetCameraState(camEntity)
		}
		goal := player.Body.Position.Add(follow.Offset)
		zoom := follow.Zoom
		if zoom <= 0 {
			zoom = 1
		}

		if !state.Ready || follow.Smoothing <= 0 {
			state.Center = goal
		} else {
			state.Center = cp.Vector{
				X: common.Lerp(state.Center.X, goal.X, follow.Smoothing),
				Y: common.Lerp(state.Center.Y, goal.Y, follow.Smoothing),
			}
		}
		// snap to the zoomed pixel grid
		state.Center.X = math.Round(state.Center.X*zoom) / zoom
		state.Center.Y = math.Round(state.Center.Y*zoom) / zoom

		state.Center = clampView(state.Center, w.Grid(), follow.ViewW/zoom, follow.ViewH/zoom)
		state.Zoom = zoom
		state.Ready = true
	}
}

// clampView keeps a view of size viewW x viewH inside the grid bounds. A view
// larger than the level on an axis is centered on that axis.
func clampView(center cp.Vector, g *level.Grid, viewW, viewH float64) cp.Vector {
	if g == nil || g.Len() == 0 || viewW <= 0 || viewH <= 0 {
		return center
	}
	bb := g.Bounds()
	return cp.Vector{
		X: clampAxis(center.X, bb.L, bb.R, viewW/2),
		Y: clampAxis(center.Y, bb.B, bb.T, viewH/2),
	}
}

func clampAxis(v, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return common.Clamp(v, lo+half, hi-half)
}
