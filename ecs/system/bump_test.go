package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestBumpCorrection(t *testing.T) {
	cases := []struct {
		name    string
		solid   cp.BB
		old     cp.Vector
		normal  cp.Vector
		wantPos cp.Vector
		wantVel cp.Vector
		moved   bool
	}{
		{
			name:    "head_bonk_slides_off_corner",
			solid:   cp.BB{L: 0.25, B: 1, R: 3, T: 2},
			old:     cp.Vector{Y: 10},
			normal:  cp.Vector{Y: -1},
			wantPos: cp.Vector{X: -0.26},
			wantVel: cp.Vector{Y: 10},
			moved:   true,
		},
		{
			name:    "ledge_lip_steps_up",
			solid:   cp.BB{L: 0.6, B: -1, R: 2, T: -0.41},
			old:     cp.Vector{X: 5},
			normal:  cp.Vector{X: -1},
			wantPos: cp.Vector{Y: 0.1},
			wantVel: cp.Vector{X: 5},
			moved:   true,
		},
		{
			name:   "full_ceiling_not_corrected",
			solid:  cp.BB{L: -3, B: 1, R: 3, T: 2},
			old:    cp.Vector{Y: 10},
			normal: cp.Vector{Y: -1},
		},
		{
			name:   "tall_wall_not_corrected",
			solid:  cp.BB{L: 0.6, B: -1, R: 2, T: 3},
			old:    cp.Vector{X: 5},
			normal: cp.Vector{X: -1},
		},
		{
			name:   "normal_must_match_axis",
			solid:  cp.BB{L: 0.25, B: 1, R: 3, T: 2},
			old:    cp.Vector{Y: 10},
			normal: cp.Vector{X: -1},
		},
		{
			name:   "unobstructed_pose_ignored",
			solid:  cp.BB{L: 5, B: 5, R: 6, T: 6},
			old:    cp.Vector{Y: 10},
			normal: cp.Vector{Y: -1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			solids := newFakeWorld()
			other := solids.add(c.solid, component.LayerGround)

			e := ecs.CreateEntity(w)
			motion := component.NewMotion()
			motion.OldVelocity = c.old
			tuning := testTuning()
			body := &component.PhysicsBody{Body: cp.NewBody(1, 1), Width: 1, Height: 1}
			body.Body.SetVelocityVector(cp.Vector{})
			assert.NoError(t, ecs.Add(w, e, component.MotionComponent.Kind(), &motion))
			assert.NoError(t, ecs.Add(w, e, component.MotionTuningComponent.Kind(), &tuning))
			assert.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body))

			ecs.Emit(w, component.CollisionContactEvent{Entity: uint64(e), Other: other, Normal: c.normal})
			NewBumpSystem(solids).Update(w, testDT)

			pos, vel := body.Body.Position(), body.Body.Velocity()
			if !c.moved {
				assert.Equal(t, cp.Vector{}, pos)
				assert.Equal(t, cp.Vector{}, vel)
				return
			}
			assert.InDelta(t, c.wantPos.X, pos.X, 1e-9)
			assert.InDelta(t, c.wantPos.Y, pos.Y, 1e-9)
			assert.Equal(t, c.wantVel, vel)
			assert.Empty(t, ecs.Peek[component.CollisionContactEvent](w))
		})
	}
}
