package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// MotionSystem turns intent into body velocity: ground and wall detection,
// horizontal acceleration, fall clamp, jumps, dashes and wall stick. It runs
// on the fixed tick before the physics step.
type MotionSystem struct {
	Query CollisionQuerier
	Gate  AbilityGate
	Debug bool
}

// NewMotionSystem builds a controller. A nil querier falls back to the
// world's physics world; a nil gate uses DefaultAbilityGate.
func NewMotionSystem(query CollisionQuerier, gate AbilityGate) *MotionSystem {
	return &MotionSystem{Query: query, Gate: gate}
}

func (s *MotionSystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}

	s.latchEdges(w)
	query := querierFor(w, s.Query)

	ecs.ForEach3(w, component.MotionComponent.Kind(), component.MotionTuningComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, m *component.Motion, base *component.MotionTuning, body *component.PhysicsBody) {
		if body.Body == nil {
			return
		}

		var in component.Input
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			in = *input
		}
		if in.MoveX != 0 {
			m.Facing = common.Sign(in.MoveX)
		}

		tuning := *base
		if mod, ok := ecs.Get(w, e, component.MotionModifierComponent.Kind()); ok {
			tuning.MaxSpeed *= mod.SpeedScale
			tuning.GroundAcceleration *= mod.AccelerationScale
			tuning.AirAcceleration *= mod.AccelerationScale
		}

		if query != nil {
			box := colliderBox(w, e, body)
			detectGround(query, uint64(e), m, &tuning, box, dt)
			detectWall(query, uint64(e), m, &tuning, box, dt)
		}

		v := body.Body.Velocity()
		v.X = horizontalSpeed(m, &tuning, v, in.MoveX, dt)
		if v.Y < -tuning.MaxFallSpeed {
			v.Y = -tuning.MaxFallSpeed
		}
		v = s.updateJump(w, e, m, &tuning, v, in, dt)
		v = s.updateDash(w, e, m, &tuning, v, in, dt)
		v = wallStick(m, &tuning, body.Body, v)

		body.Body.SetVelocityVector(v)
		m.OldVelocity = v
		m.LastY = body.Body.Position().Y
	})
}

// latchEdges converts edge events and intent pulses into latches.
func (s *MotionSystem) latchEdges(w *ecs.World) {
	for _, evt := range ecs.Drain[component.JumpStartEvent](w) {
		if m, ok := ecs.Get(w, ecs.Entity(evt.Entity), component.MotionComponent.Kind()); ok {
			m.JumpLatch = 0
		}
	}
	for _, evt := range ecs.Drain[component.JumpEndEvent](w) {
		if m, ok := ecs.Get(w, ecs.Entity(evt.Entity), component.MotionComponent.Kind()); ok {
			m.JumpLatch = -1
			m.JumpHold = -1
		}
	}
	for _, evt := range ecs.Drain[component.DashStartEvent](w) {
		if m, ok := ecs.Get(w, ecs.Entity(evt.Entity), component.MotionComponent.Kind()); ok {
			m.DashLatch = 0
		}
	}
	ecs.ForEach2(w, component.MotionComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, m *component.Motion, in *component.Input) {
		if in.JumpPressed {
			m.JumpLatch = 0
		}
		if in.DashPressed {
			m.DashLatch = 0
		}
	})
}

func (s *MotionSystem) gate() AbilityGate {
	if s.Gate == nil {
		return DefaultAbilityGate{}
	}
	return s.Gate
}

func horizontalSpeed(m *component.Motion, t *component.MotionTuning, v cp.Vector, moveX, dt float64) float64 {
	accel := t.AirAcceleration
	if m.Grounded || abs(v.Y) < t.JumpApexSpeed {
		accel = t.GroundAcceleration
	}

	target := t.MaxSpeed * moveX
	if (v.X < 0 && target > 0) || (v.X > 0 && target < 0) {
		accel *= 2
	}
	return common.MoveToward(v.X, target, accel*dt)
}

func (s *MotionSystem) updateJump(w *ecs.World, e ecs.Entity, m *component.Motion, t *component.MotionTuning, v cp.Vector, in component.Input, dt float64) cp.Vector {
	if m.JumpLatch < 0 && m.Grounded {
		m.Jumps = 0
		m.WallJumps = 0
	}

	if !in.Jump {
		m.JumpLatch = -1
		m.JumpHold = -1
	}

	pressed := m.JumpLatch >= 0 && m.JumpLatch < t.JumpBufferBeforeLand && in.Jump
	if pressed && !m.Holding() && !m.Dashing() {
		m.JumpLatch = -1
		s.tryJump(w, e, m, t, in)
	}

	// the start tick always lifts, even with a zero hold duration
	if m.Holding() && (m.JumpHold == 0 || m.JumpHold < t.MaxJumpDuration) {
		if v.Y < m.JumpLift {
			v.Y = m.JumpLift
		}
		if m.JumpPush != 0 {
			v.X = m.JumpPush
		}
		m.SinceGrounded = t.JumpBufferAfterLand + 1
		m.SinceOnWall = t.WallJumpBuffer + 1
	}

	if m.JumpLatch >= 0 {
		m.JumpLatch += dt
	}
	if m.JumpHold >= 0 {
		m.JumpHold += dt
	}
	if m.JumpHold > t.MaxJumpDuration {
		m.JumpHold = -1
	}
	return v
}

// tryJump consults the gate once. The wall branch wins while airborne
// inside the wall-exit buffer; otherwise the jump counter is used for both
// ground and air jumps.
func (s *MotionSystem) tryJump(w *ecs.World, e ecs.Entity, m *component.Motion, t *component.MotionTuning, in component.Input) {
	if !m.Grounded && m.SinceOnWall < t.WallJumpBuffer {
		index := m.WallJumps + 1
		allowed := s.gate().CanJump(w, e, index, true)
		s.debugf("motion: entity=%s jump kind=%s index=%d allowed=%v", e, component.JumpWall, index, allowed)
		if !allowed {
			return
		}
		m.WallJumps++
		m.JumpHold = 0
		m.JumpLift, m.JumpPush = wallJumpVelocity(m.LastWallSide, t.WallJumpSpeed, in)
		ecs.Emit(w, component.JumpedEvent{Entity: uint64(e), Kind: component.JumpWall, Index: index})
		return
	}

	kind := component.JumpAir
	if m.SinceGrounded < t.JumpBufferAfterLand {
		kind = component.JumpGround
	}
	index := m.Jumps + 1
	allowed := s.gate().CanJump(w, e, index, false)
	s.debugf("motion: entity=%s jump kind=%s index=%d allowed=%v", e, kind, index, allowed)
	if !allowed {
		return
	}
	m.Jumps++
	m.JumpHold = 0
	m.JumpLift = t.JumpSpeed
	m.JumpPush = 0
	ecs.Emit(w, component.JumpedEvent{Entity: uint64(e), Kind: kind, Index: index})
}

// wallJumpVelocity returns straight up when the intent points steeply up,
// otherwise 45 degrees away from the wall.
func wallJumpVelocity(side int, speed float64, in component.Input) (lift, push float64) {
	if in.MoveY > 0 && in.MoveY >= 3*abs(in.MoveX) {
		return speed, 0
	}
	if side == component.WallNone {
		return speed, 0
	}
	v := cp.Vector{X: float64(-side), Y: 1}.Normalize().Mult(speed)
	return v.Y, v.X
}

func (s *MotionSystem) updateDash(w *ecs.World, e ecs.Entity, m *component.Motion, t *component.MotionTuning, v cp.Vector, in component.Input, dt float64) cp.Vector {
	if m.Grounded && !m.Dashing() {
		m.Dashes = 0
	}

	if m.DashLatch >= 0 {
		m.DashLatch = -1
		index := m.Dashes + 1
		allowed := s.gate().CanDash(w, e, index)
		s.debugf("motion: entity=%s dash index=%d allowed=%v", e, index, allowed)
		if allowed {
			dir := cp.Vector{X: in.MoveX, Y: in.MoveY}
			if dir.LengthSq() == 0 {
				dir = cp.Vector{X: m.Facing, Y: 0}
			} else {
				dir = dir.Normalize()
			}
			m.DashVelocity = dir.Mult(t.DashSpeed)
			m.DashAge = 0
			m.Dashes++
			m.JumpHold = -1
			ecs.Emit(w, component.DashedEvent{Entity: uint64(e), Index: index, Direction: dir})
		}
	}

	if !m.Dashing() {
		return v
	}
	if m.DashAge <= t.DashDuration {
		m.DashAge += dt
		return m.DashVelocity
	}

	m.DashAge = -1
	v.X = common.Clamp(v.X, -t.MaxSpeed, t.MaxSpeed)
	v.Y = common.Clamp(v.Y, -t.MaxSpeed, 0)
	return v
}

// wallStick pins the body to its previous height for WallStickDuration,
// then caps the slide speed.
func wallStick(m *component.Motion, t *component.MotionTuning, body *cp.Body, v cp.Vector) cp.Vector {
	if !m.OnWall || m.Dashing() || m.Holding() {
		return v
	}
	if v.Y > 0 {
		v.Y = 0
	}
	if m.OnWallTime <= t.WallStickDuration {
		if !math.IsNaN(m.LastY) {
			pos := body.Position()
			pos.Y = m.LastY
			body.SetPosition(pos)
		}
		v.Y = 0
		return v
	}
	if v.Y < -t.WallSlideSpeed {
		v.Y = -t.WallSlideSpeed
	}
	return v
}

func (s *MotionSystem) debugf(format string, args ...any) {
	if s.Debug {
		log.Printf(format, args...)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
