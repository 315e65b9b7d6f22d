package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const bumpStep = 0.02

// BumpSystem nudges a body around box corners it clipped during the last
// physics step: sideways for head bonks, upward for ledge lips.
type BumpSystem struct {
	Query CollisionQuerier
}

func NewBumpSystem(query CollisionQuerier) *BumpSystem {
	return &BumpSystem{Query: query}
}

func (s *BumpSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	contacts := ecs.Drain[component.CollisionContactEvent](w)
	query := querierFor(w, s.Query)
	if query == nil || dt <= 0 {
		return
	}

	for _, contact := range contacts {
		e := ecs.Entity(contact.Entity)
		m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
		if !ok {
			continue
		}
		tuning, ok := ecs.Get(w, e, component.MotionTuningComponent.Kind())
		if !ok {
			continue
		}
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || body.Body == nil {
			continue
		}
		bump(query, uint64(e), m, tuning, body, colliderBox(w, e, body), contact.Normal, dt)
	}
}

func bump(q CollisionQuerier, self uint64, m *component.Motion, t *component.MotionTuning, body *component.PhysicsBody, box component.Box, normal cp.Vector, dt float64) bool {
	old := m.OldVelocity
	pose := box.Translate(old.Mult(dt))
	if !obstructed(q, self, pose, t.BumpMask) {
		return false
	}

	var offsets []cp.Vector
	switch {
	case old.Y > 0 && old.Y > abs(old.X*3):
		if abs(normal.Y) < abs(normal.X)*3 {
			return false
		}
		tests := int(math.Ceil(t.BumpHeadCorrection / bumpStep))
		for i := 0; i < tests*2; i++ {
			dir := 1.0
			if i%2 == 1 {
				dir = -1
			}
			offsets = append(offsets, cp.Vector{X: float64(i/2) * bumpStep * dir})
		}
	case old.Y <= 0 && abs(old.X) > abs(old.Y*2):
		if abs(normal.X) < abs(normal.Y)*2 {
			return false
		}
		tests := int(math.Ceil(t.BumpWallCorrection / bumpStep))
		for i := 0; i < tests; i++ {
			offsets = append(offsets, cp.Vector{Y: float64(i) * bumpStep})
		}
	default:
		return false
	}

	for _, offset := range offsets {
		if obstructed(q, self, pose.Translate(offset), t.BumpMask) {
			continue
		}
		body.Body.SetPosition(body.Body.Position().Add(offset))
		body.Body.SetVelocityVector(old)
		return true
	}
	return false
}

func obstructed(q CollisionQuerier, self uint64, box component.Box, mask uint) bool {
	for _, hit := range q.OverlapBox(box, mask) {
		if hit.Surface != self {
			return true
		}
	}
	return false
}
