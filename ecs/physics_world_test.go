package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroundWorld(t *testing.T, layer uint) (*World, *PhysicsWorld, Entity) {
	t.Helper()
	w := NewWorld()
	pw := NewPhysicsWorld(cp.Vector{Y: -10})
	w.SetPhysicsWorld(pw)
	ground := CreateEntity(w)
	require.NotNil(t, pw.AddSolid(ground, cp.BB{L: -5, B: -1, R: 5, T: 0}, layer))
	return w, pw, ground
}

func TestPhysicsWorldBoxQueries(t *testing.T) {
	unit := cp.Vector{X: 1, Y: 1}
	cases := []struct {
		name  string
		layer uint
		query func(pw *PhysicsWorld) []component.Hit
		hit   bool
	}{
		{
			name:  "overlap_hits_ground",
			layer: component.LayerGround,
			query: func(pw *PhysicsWorld) []component.Hit {
				return pw.OverlapBox(component.Box{Center: cp.Vector{Y: 0.4}, Size: unit}, component.LayerGround)
			},
			hit: true,
		},
		{
			name:  "overlap_clear_above",
			layer: component.LayerGround,
			query: func(pw *PhysicsWorld) []component.Hit {
				return pw.OverlapBox(component.Box{Center: cp.Vector{Y: 2}, Size: unit}, component.LayerGround)
			},
		},
		{
			name:  "cast_down_reaches_ground",
			layer: component.LayerGround,
			query: func(pw *PhysicsWorld) []component.Hit {
				return pw.CastBox(component.Box{Center: cp.Vector{Y: 0.7}, Size: unit}, cp.Vector{Y: -1}, 0.5, component.LayerGround)
			},
			hit: true,
		},
		{
			name:  "cast_down_too_short",
			layer: component.LayerGround,
			query: func(pw *PhysicsWorld) []component.Hit {
				return pw.CastBox(component.Box{Center: cp.Vector{Y: 0.7}, Size: unit}, cp.Vector{Y: -1}, 0.1, component.LayerGround)
			},
		},
		{
			name:  "cast_zero_distance_is_overlap",
			layer: component.LayerGround,
			query: func(pw *PhysicsWorld) []component.Hit {
				return pw.CastBox(component.Box{Center: cp.Vector{Y: 0.4}, Size: unit}, cp.Vector{Y: -1}, 0, component.LayerGround)
			},
			hit: true,
		},
		{
			name:  "mask_excludes_other_layers",
			layer: component.LayerSlide,
			query: func(pw *PhysicsWorld) []component.Hit {
				return pw.OverlapBox(component.Box{Center: cp.Vector{Y: 0.4}, Size: unit}, component.LayerGround)
			},
		},
		{
			name:  "mask_includes_layer",
			layer: component.LayerSlide,
			query: func(pw *PhysicsWorld) []component.Hit {
				return pw.OverlapBox(component.Box{Center: cp.Vector{Y: 0.4}, Size: unit}, component.LayerGround|component.LayerSlide)
			},
			hit: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, pw, ground := newGroundWorld(t, c.layer)
			hits := c.query(pw)
			if !c.hit {
				assert.Empty(t, hits)
				return
			}
			require.Len(t, hits, 1)
			assert.Equal(t, uint64(ground), hits[0].Surface)
			assert.Greater(t, hits[0].Normal.Y, 0.9, "normal points out of the ground")
		})
	}
}

func TestPhysicsWorldRemoveEntity(t *testing.T) {
	w, pw, ground := newGroundWorld(t, component.LayerGround)
	box := component.Box{Center: cp.Vector{Y: 0.4}, Size: cp.Vector{X: 1, Y: 1}}
	require.Len(t, pw.OverlapBox(box, component.LayerGround), 1)

	require.True(t, DestroyEntity(w, ground))
	assert.Empty(t, pw.OverlapBox(box, component.LayerGround))
}

func TestPhysicsWorldBodyLandsAndReportsContact(t *testing.T) {
	w, pw, ground := newGroundWorld(t, component.LayerGround)
	player := CreateEntity(w)
	body := pw.AddBody(player, cp.Vector{Y: 1}, 0, 1, 1, cp.Vector{}, component.CollisionLayer{Category: component.LayerBody, Mask: component.LayerGround})
	require.NotNil(t, body)

	var contacts []Contact
	for i := 0; i < 120; i++ {
		pw.Step(1.0 / 60)
		contacts = append(contacts, pw.DrainContacts()...)
	}

	require.NotEmpty(t, contacts)
	assert.Equal(t, player, contacts[0].Entity)
	assert.Equal(t, ground, contacts[0].Other)
	assert.Greater(t, contacts[0].Normal.Y, 0.9)
	assert.InDelta(t, 0.5, body.Body.Position().Y, 0.15, "body rests on the ground")

	hits := pw.OverlapBox(component.Box{Center: body.Body.Position(), Size: cp.Vector{X: 1, Y: 1.5}}, component.LayerGround)
	require.NotEmpty(t, hits)
	for _, hit := range hits {
		assert.NotEqual(t, uint64(player), hit.Surface, "body category is outside a ground query")
	}
}

func TestPhysicsWorldRejectsEmptyBody(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(cp.Vector{})
	assert.Nil(t, pw.AddBody(CreateEntity(w), cp.Vector{}, 0, 0, 1, cp.Vector{}, component.CollisionLayer{}))

	var nilWorld *PhysicsWorld
	assert.Nil(t, nilWorld.OverlapBox(component.Box{Size: cp.Vector{X: 1, Y: 1}}, component.LayerGround))
	assert.Nil(t, nilWorld.DrainContacts())
}
