package component

import "github.com/jakecoffman/cp"

// CameraFollow stores camera targeting data.
type CameraFollow struct {
	TargetEntity int
	Offset       cp.Vector
	Smoothing    float64 // 0..1, higher follows faster; 0 snaps
	Zoom         float64
	ViewW        float64 // screen size in pixels
	ViewH        float64
}

// CameraState is the resolved view center in world space.
type CameraState struct {
	Center cp.Vector
	Zoom   float64
	Ready  bool // false until the first follow update
}
