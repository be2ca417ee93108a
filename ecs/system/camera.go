package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cakechase/common"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

// trackHeight is the height above the board the tracking rig focuses on.
const trackHeight = 1

// CameraRigSystem drives every camera rig from mouse and arrow input.
type CameraRigSystem struct{}

func NewCameraRigSystem() *CameraRigSystem {
	return &CameraRigSystem{}
}

func (c *CameraRigSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok {
		return
	}

	var target *mgl32.Vec3
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		if target == nil {
			v := mgl32.Vec3{float32(p.I), trackHeight, float32(p.J)}
			target = &v
		}
	})

	ecs.ForEach2(w, component.CameraRigComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rig *component.CameraRig, t *component.Transform) {
		proj, _ := ecs.Get(w, e, component.ProjectionComponent.Kind())
		StepRig(rig, t, proj, input, target)
	})
}

// StepRig applies one frame of input to a rig. Orbit wins over pan, pan
// over zoom. Tracking then snaps onto target while an arrow is held,
// overriding whatever the mouse did this frame.
func StepRig(rig *component.CameraRig, t *component.Transform, proj *component.Projection, in *component.Input, target *mgl32.Vec3) {
	if rig == nil || t == nil || in == nil {
		return
	}

	if in.OrbitJustPressed || in.OrbitJustReleased {
		rig.UpsideDown = common.IsUpsideDown(t.Rotation)
	}

	var rotationMove, pan cp.Vector
	if in.OrbitHeld {
		if in.Modifier {
			pan = in.MouseDelta.Mult(float64(rig.PanScale))
		} else {
			rotationMove = in.MouseDelta
		}
	}

	frustum := frustumOf(proj)
	changed := false
	switch {
	case rotationMove.LengthSq() > 0:
		t.Rotation = common.Orbit(t.Rotation, rotationMove, frustum.Width, frustum.Height, rig.UpsideDown)
		changed = true
	case pan.LengthSq() > 0:
		rig.Focus = common.Pan(rig.Focus, t.Rotation, pan, rig.Radius, frustum)
		changed = true
	case in.Scroll != 0:
		rig.Radius = common.Zoom(rig.Radius, in.Scroll)
		changed = true
	}
	if changed {
		t.Translation = common.RigPosition(rig.Focus, t.Rotation, rig.Radius)
	}

	if rig.Tracking && target != nil && in.AnyArrow() {
		rig.Focus = *target
		t.Rotation = common.LookTo(rig.Focus.Sub(t.Translation), mgl32.Vec3{0, 1, 0})
		t.Translation = common.RigPosition(rig.Focus, t.Rotation, rig.Radius)
	}
}

func frustumOf(proj *component.Projection) common.Frustum {
	if proj == nil {
		return common.Frustum{}
	}
	return common.Frustum{
		FOV:    proj.FOV,
		Aspect: proj.Aspect,
		Width:  proj.Width,
		Height: proj.Height,
		Ortho:  proj.Ortho,
	}
}
