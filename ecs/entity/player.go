package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

var ErrNoPhysicsWorld = errors.New("entity: world has no physics world")

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, spec.Transform.X, spec.Transform.Y)
}

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, x, y)
}

// NewPlayerFromSpec creates a controlled body at (x, y) with its collider
// registered in the world's physics world.
func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("player: %w", ErrNoPhysicsWorld)
	}
	tuning, err := MotionTuningFromSpec(spec.Motion)
	if err != nil {
		return 0, fmt.Errorf("player: motion tuning: %w", err)
	}

	player := ecs.CreateEntity(w)
	transform := &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1, Rotation: spec.Transform.Rotation}
	motion := component.NewMotion()

	adds := []func() error{
		func() error { return ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error { return ecs.Add(w, player, component.TransformComponent.Kind(), transform) },
		func() error { return ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}) },
		func() error { return ecs.Add(w, player, component.MotionComponent.Kind(), &motion) },
		func() error { return ecs.Add(w, player, component.MotionTuningComponent.Kind(), &tuning) },
		func() error {
			return ecs.Add(w, player, component.AbilitiesComponent.Kind(), &component.Abilities{
				Jumps:     spec.Abilities.Jumps,
				WallJumps: spec.Abilities.WallJumps,
				Dashes:    spec.Abilities.Dashes,
			})
		},
		func() error {
			return ecs.Add(w, player, component.CameraSubjectComponent.Kind(), &component.CameraSubject{
				Weight:  spec.CameraWeight,
				Instant: true,
			})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, player)
			return 0, fmt.Errorf("player: add component: %w", err)
		}
	}

	layer := component.CollisionLayer{Category: component.LayerBody, Mask: tuning.BumpMask}
	body := pw.AddBody(player, cp.Vector{X: x, Y: y}, common.Deg2Rad(transform.Rotation),
		spec.Collider.Width, spec.Collider.Height,
		cp.Vector{X: spec.Collider.OffsetX, Y: spec.Collider.OffsetY}, layer)
	if body == nil {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("player: collider %.2fx%.2f rejected", spec.Collider.Width, spec.Collider.Height)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), body); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, player, component.CollisionLayerComponent.Kind(), &layer); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("player: add collision layer: %w", err)
	}

	return player, nil
}

// ApplyPlayerSpec pushes reloaded tuning and abilities onto a live player
// without touching its runtime motion state.
func ApplyPlayerSpec(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec) error {
	tuning, err := MotionTuningFromSpec(spec.Motion)
	if err != nil {
		return fmt.Errorf("player: motion tuning: %w", err)
	}
	if t, ok := ecs.Get(w, player, component.MotionTuningComponent.Kind()); ok {
		*t = tuning
	}
	if a, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind()); ok {
		a.Jumps = spec.Abilities.Jumps
		a.WallJumps = spec.Abilities.WallJumps
		a.Dashes = spec.Abilities.Dashes
	}
	if s, ok := ecs.Get(w, player, component.CameraSubjectComponent.Kind()); ok {
		s.Weight = spec.CameraWeight
	}
	return nil
}
