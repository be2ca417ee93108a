package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/cakechase/common"
	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/prefabs"
)

const (
	defaultViewportW = 1280
	defaultViewportH = 720
)

// NewCamera spawns the rig at the spec translation looking at target. The
// focus starts on the target so that the first orbit turns around it.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, target mgl32.Vec3) (ecs.Entity, error) {
	pos := mgl32.Vec3{spec.Translation.X, spec.Translation.Y, spec.Translation.Z}
	radius := target.Sub(pos).Len()
	if radius < common.MinRigRadius {
		radius = common.MinRigRadius
	}

	panScale := float32(1)
	if spec.Tracking {
		panScale = 2
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	rot := common.LookTo(target.Sub(pos), mgl32.Vec3{0, 1, 0})
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		Translation: common.RigPosition(target, rot, radius),
		Rotation:    rot,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraRigComponent.Kind(), &component.CameraRig{
		Focus:    target,
		Radius:   radius,
		Tracking: spec.Tracking,
		PanScale: panScale,
	}); err != nil {
		return 0, fmt.Errorf("camera: add rig: %w", err)
	}

	if err := ecs.Add(w, camera, component.ProjectionComponent.Kind(), &component.Projection{
		FOV:    spec.FOV,
		Aspect: float32(defaultViewportW) / float32(defaultViewportH),
		Near:   spec.Near,
		Far:    spec.Far,
		Width:  defaultViewportW,
		Height: defaultViewportH,
	}); err != nil {
		return 0, fmt.Errorf("camera: add projection: %w", err)
	}

	return camera, nil
}
