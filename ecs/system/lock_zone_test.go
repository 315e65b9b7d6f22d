package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockZoneRequestsOncePerEntry(t *testing.T) {
	w := ecs.NewWorld()
	zoneEntity := ecs.CreateEntity(w)
	zone := &component.LockZone{Name: "room", Bounds: cp.BB{L: 10, B: 0, R: 20, T: 10}}
	require.NoError(t, ecs.Add(w, zoneEntity, component.LockZoneComponent.Kind(), zone))

	subject := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, subject, component.CameraSubjectComponent.Kind(), &component.CameraSubject{Weight: 1}))
	pos := &component.Transform{X: 5, Y: 5}
	require.NoError(t, ecs.Add(w, subject, component.TransformComponent.Kind(), pos))
	sys := NewLockZoneSystem()

	steps := []struct {
		name     string
		x        float64
		requests int
		occupied bool
	}{
		{name: "outside", x: 5},
		{name: "enter", x: 15, requests: 1, occupied: true},
		{name: "stay", x: 16, occupied: true},
		{name: "leave", x: 25},
		{name: "reenter", x: 19, requests: 1, occupied: true},
	}

	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			pos.X = s.x
			sys.Update(w, testDT)
			reqs := ecs.Drain[component.LockRegionRequest](w)
			require.Len(t, reqs, s.requests)
			for _, r := range reqs {
				require.NotNil(t, r.Region)
				assert.Equal(t, zone.Bounds, *r.Region)
			}
			assert.Equal(t, s.occupied, zone.Occupied())
		})
	}
}
