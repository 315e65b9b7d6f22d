package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackShakesOnWallJumpAndDash(t *testing.T) {
	presets := map[string]prefabs.ShakeSpec{
		"dash":      {Kind: "trauma", Amplitude: 0.1, Duration: 0.2},
		"wall_jump": {Kind: "sine", Amplitude: 0.1, Frequency: 10, Duration: 0.2},
	}
	w := ecs.NewWorld()
	ecs.Emit(w, component.JumpedEvent{Entity: 1, Kind: component.JumpGround, Index: 1})
	ecs.Emit(w, component.JumpedEvent{Entity: 1, Kind: component.JumpWall, Index: 1})
	ecs.Emit(w, component.DashedEvent{Entity: 1, Index: 1, Direction: cp.Vector{X: 1}})

	NewFeedbackSystem(presets).Update(w, testDT)

	reqs := ecs.Drain[component.ShakeAddRequest](w)
	require.Len(t, reqs, 2)
	assert.IsType(t, &SineShake{}, reqs[0].Effect)
	assert.IsType(t, &TraumaShake{}, reqs[1].Effect)
	assert.Zero(t, w.Events().Len())
}

func TestFeedbackSkipsMissingOrBrokenPresets(t *testing.T) {
	w := ecs.NewWorld()
	ecs.Emit(w, component.JumpedEvent{Entity: 1, Kind: component.JumpWall, Index: 1})
	ecs.Emit(w, component.DashedEvent{Entity: 1, Index: 1})

	presets := map[string]prefabs.ShakeSpec{"dash": {Kind: "wobble"}}
	NewFeedbackSystem(presets).Update(w, testDT)
	assert.Empty(t, ecs.Drain[component.ShakeAddRequest](w))
}

func TestFeedbackShippedPresets(t *testing.T) {
	spec, err := prefabs.LoadShakesSpec()
	require.NoError(t, err)
	for _, name := range []string{"dash", "wall_jump"} {
		preset, ok := spec.Presets[name]
		require.True(t, ok, name)
		_, err := NewShakeEffect(preset)
		assert.NoError(t, err, name)
	}
}
