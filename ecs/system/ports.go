package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CollisionQuerier answers box queries against level geometry. An empty
// result means "no obstruction".
type CollisionQuerier interface {
	OverlapBox(box component.Box, mask uint) []component.Hit
	CastBox(box component.Box, dir cp.Vector, dist float64, mask uint) []component.Hit
}

// AbilityGate decides whether the index-th jump or dash of the current
// airborne phase is allowed. Index is 1-based.
type AbilityGate interface {
	CanJump(w *ecs.World, e ecs.Entity, index int, wall bool) bool
	CanDash(w *ecs.World, e ecs.Entity, index int) bool
}

// DefaultAbilityGate allows only the first jump and the first dash.
type DefaultAbilityGate struct{}

func (DefaultAbilityGate) CanJump(_ *ecs.World, _ ecs.Entity, index int, _ bool) bool {
	return firstOnly(index)
}

func (DefaultAbilityGate) CanDash(_ *ecs.World, _ ecs.Entity, index int) bool {
	return firstOnly(index)
}

func firstOnly(index int) bool {
	if index < 1 {
		index = 1
	}
	return index == 1
}

func querierFor(w *ecs.World, q CollisionQuerier) CollisionQuerier {
	if q != nil {
		return q
	}
	if pw := w.PhysicsWorld(); pw != nil {
		return pw
	}
	return nil
}

// colliderBox returns the world-space pose of an entity's collider. The
// transform rotation is in degrees and is converted here only.
func colliderBox(w *ecs.World, e ecs.Entity, body *component.PhysicsBody) component.Box {
	angle := 0.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		angle = common.Deg2Rad(t.Rotation)
	}
	offset := cp.ForAngle(angle).Rotate(cp.Vector{X: body.OffsetX, Y: body.OffsetY})
	return component.Box{
		Center: body.Body.Position().Add(offset),
		Size:   cp.Vector{X: body.Width, Y: body.Height},
		Angle:  angle,
	}
}
