package ecs

import "github.com/milk9111/dashcore/ecs/component"

// Players returns the player storage.
func (w *World) Players() *SparseSet[component.Player] {
	if w == nil {
		return nil
	}
	if w.players == nil {
		w.players = &SparseSet[component.Player]{}
	}
	return w.players
}

// SetPlayer attaches a player component.
func (w *World) SetPlayer(e Entity, p component.Player) {
	if !w.IsAlive(e) {
		return
	}
	w.Players().Set(e.ID, p)
}

// GetPlayer returns the player component for e.
func (w *World) GetPlayer(e Entity) *component.Player {
	if !w.IsAlive(e) {
		return nil
	}
	p, _ := w.Players().Get(e.ID)
	return p
}

// CameraFollows returns the camera follow storage.
func (w *World) CameraFollows() *SparseSet[component.CameraFollow] {
	if w == nil {
		return nil
	}
	if w.cameraFollows == nil {
		w.cameraFollows = &SparseSet[component.CameraFollow]{}
	}
	return w.cameraFollows
}

// SetCameraFollow attaches camera targeting data.
func (w *World) SetCameraFollow(e Entity, f component.CameraFollow) {
	if !w.IsAlive(e) {
		return
	}
	w.CameraFollows().Set(e.ID, f)
}

// GetCameraFollow returns camera targeting data.
func (w *World) GetCameraFollow(e Entity) *component.CameraFollow {
	if !w.IsAlive(e) {
		return nil
	}
	f, _ := w.CameraFollows().Get(e.ID)
	return f
}

// CameraStates returns the camera state storage.
func (w *World) CameraStates() *SparseSet[component.CameraState] {
	if w == nil {
		return nil
	}
	if w.cameraStates == nil {
		w.cameraStates = &SparseSet[component.CameraState]{}
	}
	return w.cameraStates
}

// SetCameraState attaches a camera state component.
func (w *World) SetCameraState(e Entity, s component.CameraState) {
	if !w.IsAlive(e) {
		return
	}
	w.CameraStates().Set(e.ID, s)
}

// GetCameraState returns the camera state for e.
func (w *World) GetCameraState(e Entity) *component.CameraState {
	if !w.IsAlive(e) {
		return nil
	}
	s, _ := w.CameraStates().Get(e.ID)
	return s
}
