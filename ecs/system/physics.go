package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PhysicsSystem steps the physics world, publishes begin-contacts and
// mirrors body positions into transforms.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(dt)
	for _, c := range pw.DrainContacts() {
		ecs.Emit(w, component.CollisionContactEvent{
			Entity: uint64(c.Entity),
			Other:  uint64(c.Other),
			Normal: c.Normal,
		})
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil || body.Static {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}
