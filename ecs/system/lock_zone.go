package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// LockZoneSystem requests the camera lock region once each time a camera
// subject enters a lock zone.
type LockZoneSystem struct{}

func NewLockZoneSystem() *LockZoneSystem {
	return &LockZoneSystem{}
}

func (s *LockZoneSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	var subjects []cp.Vector
	ecs.ForEach2(w, component.CameraSubjectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, subject *component.CameraSubject, t *component.Transform) {
		subjects = append(subjects, cp.Vector{X: t.X, Y: t.Y}.Add(subject.Offset))
	})

	ecs.ForEach(w, component.LockZoneComponent.Kind(), func(_ ecs.Entity, zone *component.LockZone) {
		inside := false
		for _, p := range subjects {
			if zone.Bounds.ContainsVect(p) {
				inside = true
				break
			}
		}
		if !inside {
			zone.Leave()
			return
		}
		if zone.Enter() {
			region := zone.Bounds
			ecs.Emit(w, component.LockRegionRequest{Region: &region})
		}
	})
}
