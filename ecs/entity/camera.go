package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return NewCameraAt(w, 0, 0)
}

func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, spec, x, y)
}

// NewCameraFromSpec creates the camera entity with its follow state and an
// empty shake layer seeded with spec.ShakeSeed.
func NewCameraFromSpec(w *ecs.World, spec *prefabs.CameraSpec, x, y float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	cam := CameraFromSpec(*spec)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraStateComponent.Kind(), &component.CameraState{
		Position: cp.Vector{X: x, Y: y},
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera state: %w", err)
	}
	if err := ecs.Add(w, camera, component.ScreenShakeComponent.Kind(), &component.ScreenShake{Seed: spec.ShakeSeed}); err != nil {
		return 0, fmt.Errorf("camera: add screen shake: %w", err)
	}

	return camera, nil
}

// ApplyCameraSpec replaces the follow tuning of a live camera.
func ApplyCameraSpec(w *ecs.World, camera ecs.Entity, spec *prefabs.CameraSpec) {
	if cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind()); ok {
		*cam = CameraFromSpec(*spec)
	}
}
