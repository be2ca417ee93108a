package component

import "github.com/go-gl/mathgl/mgl32"

// CameraRig is a turntable camera: the camera always sits Radius along its
// own +Z axis from Focus.
type CameraRig struct {
	Focus      mgl32.Vec3
	Radius     float32
	UpsideDown bool
	// Tracking snaps the rig onto the player while an arrow key is held.
	Tracking bool
	// PanScale multiplies raw mouse motion before panning.
	PanScale float32
}

var CameraRigComponent = NewComponent[CameraRig]()

// Projection describes the perspective frustum and the viewport in pixels.
type Projection struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
	Width  float32
	Height float32
	Ortho  bool
}

var ProjectionComponent = NewComponent[Projection]()
