package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraSubjectSnapsOnceThenFollows(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	subject := &component.CameraSubject{Weight: 2, Offset: cp.Vector{Y: 1}, Instant: true}
	require.NoError(t, ecs.Add(w, e, component.CameraSubjectComponent.Kind(), subject))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 3, Y: 4}))
	sys := NewCameraSubjectSystem()

	sys.Update(w, testDT)
	instant := ecs.Drain[component.CameraInstantMoveRequest](w)
	require.Len(t, instant, 1)
	assert.Equal(t, component.CameraInstantMoveRequest{Position: cp.Vector{X: 3, Y: 5}, Weight: 2}, instant[0])
	assert.Empty(t, ecs.Drain[component.CameraMoveRequest](w))
	assert.False(t, subject.Instant)

	sys.Update(w, testDT)
	assert.Empty(t, ecs.Drain[component.CameraInstantMoveRequest](w))
	moves := ecs.Drain[component.CameraMoveRequest](w)
	require.Len(t, moves, 1)
	assert.Equal(t, component.CameraMoveRequest{Position: cp.Vector{X: 3, Y: 5}, Weight: 2}, moves[0])
}
