package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/require"
)

const testDT = 0.0625

type fakeSolid struct {
	id       uint64
	bb       cp.BB
	category uint
}

// fakeWorld answers box queries against axis-aligned solids. Touching edges
// do not count as overlap.
type fakeWorld struct {
	solids []fakeSolid
	next   uint64
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{next: 1000}
}

func (f *fakeWorld) add(bb cp.BB, category uint) uint64 {
	f.next++
	f.solids = append(f.solids, fakeSolid{id: f.next, bb: bb, category: category})
	return f.next
}

func (f *fakeWorld) OverlapBox(box component.Box, mask uint) []component.Hit {
	bb := boxBB(box)
	var hits []component.Hit
	for _, s := range f.solids {
		if s.category&mask == 0 || !overlaps(bb, s.bb) {
			continue
		}
		hits = append(hits, component.Hit{Surface: s.id, Normal: separation(bb, s.bb)})
	}
	return hits
}

func (f *fakeWorld) CastBox(box component.Box, dir cp.Vector, dist float64, mask uint) []component.Hit {
	if dist <= 0 || dir.LengthSq() == 0 {
		return f.OverlapBox(box, mask)
	}
	unit := dir.Normalize()
	swept := boxBB(box).Merge(boxBB(box.Translate(unit.Mult(dist))))
	var hits []component.Hit
	for _, s := range f.solids {
		if s.category&mask == 0 || !overlaps(swept, s.bb) {
			continue
		}
		hits = append(hits, component.Hit{Surface: s.id, Normal: unit.Neg()})
	}
	return hits
}

func boxBB(box component.Box) cp.BB {
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, c := range box.Corners() {
		bb.L = math.Min(bb.L, c.X)
		bb.R = math.Max(bb.R, c.X)
		bb.B = math.Min(bb.B, c.Y)
		bb.T = math.Max(bb.T, c.Y)
	}
	return bb
}

func overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// separation returns the axis along which box leaves solid soonest,
// pointing out of solid.
func separation(box, solid cp.BB) cp.Vector {
	candidates := []struct {
		depth  float64
		normal cp.Vector
	}{
		{box.R - solid.L, cp.Vector{X: -1}},
		{solid.R - box.L, cp.Vector{X: 1}},
		{box.T - solid.B, cp.Vector{Y: -1}},
		{solid.T - box.B, cp.Vector{Y: 1}},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.depth < best.depth {
			best = c
		}
	}
	return best.normal
}

// harness drives one controlled unit box through the motion system and a
// minimal integrator that resolves penetration against the fake solids.
type harness struct {
	t       *testing.T
	w       *ecs.World
	solids  *fakeWorld
	motion  *MotionSystem
	player  ecs.Entity
	body    *component.PhysicsBody
	gravity float64

	// pos is the body position right after the controller update.
	pos    cp.Vector
	jumped []component.JumpedEvent
	dashed []component.DashedEvent
}

func newHarness(t *testing.T, tuning component.MotionTuning, pos cp.Vector) *harness {
	t.Helper()
	w := ecs.NewWorld()
	solids := newFakeWorld()
	player := ecs.CreateEntity(w)

	motion := component.NewMotion()
	body := &component.PhysicsBody{Body: cp.NewBody(1, math.Inf(1)), Width: 1, Height: 1}
	body.Body.SetPosition(pos)

	require.NoError(t, ecs.Add(w, player, component.MotionComponent.Kind(), &motion))
	require.NoError(t, ecs.Add(w, player, component.MotionTuningComponent.Kind(), &tuning))
	require.NoError(t, ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), body))
	require.NoError(t, ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1}))

	return &harness{
		t:       t,
		w:       w,
		solids:  solids,
		motion:  NewMotionSystem(solids, nil),
		player:  player,
		body:    body,
		gravity: -30,
	}
}

// floor adds a wide ground slab whose top is at y=0.
func (h *harness) floor() uint64 {
	return h.solids.add(cp.BB{L: -100, B: -1, R: 100, T: 0}, component.LayerGround)
}

func (h *harness) state() *component.Motion {
	m, ok := ecs.Get(h.w, h.player, component.MotionComponent.Kind())
	require.True(h.t, ok)
	return m
}

// tick runs one controller update with the given intent and returns the
// velocity it commanded, then integrates gravity and position.
func (h *harness) tick(in component.Input) cp.Vector {
	h.t.Helper()
	input, ok := ecs.Get(h.w, h.player, component.InputComponent.Kind())
	require.True(h.t, ok)
	*input = in

	h.motion.Update(h.w, testDT)
	commanded := h.body.Body.Velocity()
	h.pos = h.body.Body.Position()
	h.integrate()
	h.jumped = append(h.jumped, ecs.Drain[component.JumpedEvent](h.w)...)
	h.dashed = append(h.dashed, ecs.Drain[component.DashedEvent](h.w)...)
	h.w.Events().Clear()
	return commanded
}

func (h *harness) integrate() {
	v := h.body.Body.Velocity()
	v.Y += h.gravity * testDT
	pos := h.body.Body.Position()
	half := cp.Vector{X: h.body.Width / 2, Y: h.body.Height / 2}

	pos.X += v.X * testDT
	for _, s := range h.solids.solids {
		bb := cp.NewBBForExtents(pos, half.X, half.Y)
		if !overlaps(bb, s.bb) {
			continue
		}
		if v.X > 0 {
			pos.X = s.bb.L - half.X
		} else {
			pos.X = s.bb.R + half.X
		}
		v.X = 0
	}

	pos.Y += v.Y * testDT
	for _, s := range h.solids.solids {
		bb := cp.NewBBForExtents(pos, half.X, half.Y)
		if !overlaps(bb, s.bb) {
			continue
		}
		if v.Y > 0 {
			pos.Y = s.bb.B - half.Y
		} else {
			pos.Y = s.bb.T + half.Y
		}
		v.Y = 0
	}

	h.body.Body.SetPosition(pos)
	h.body.Body.SetVelocityVector(v)
	if t, ok := ecs.Get(h.w, h.player, component.TransformComponent.Kind()); ok {
		t.X, t.Y = pos.X, pos.Y
	}
}

type countingGate struct {
	allow     func(index int, wall bool) bool
	jumpCalls int
	dashCalls int
}

func (g *countingGate) CanJump(_ *ecs.World, _ ecs.Entity, index int, wall bool) bool {
	g.jumpCalls++
	return g.allow == nil || g.allow(index, wall)
}

func (g *countingGate) CanDash(_ *ecs.World, _ ecs.Entity, index int) bool {
	g.dashCalls++
	return g.allow == nil || g.allow(index, false)
}
