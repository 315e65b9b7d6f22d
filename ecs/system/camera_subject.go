package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSubjectSystem publishes each subject's position as a weighted
// camera target. A subject flagged Instant snaps the camera once.
type CameraSubjectSystem struct{}

func NewCameraSubjectSystem() *CameraSubjectSystem {
	return &CameraSubjectSystem{}
}

func (s *CameraSubjectSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.CameraSubjectComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, subject *component.CameraSubject, t *component.Transform) {
		pos := cp.Vector{X: t.X, Y: t.Y}.Add(subject.Offset)
		if subject.Instant {
			subject.Instant = false
			ecs.Emit(w, component.CameraInstantMoveRequest{Position: pos, Weight: subject.Weight})
			return
		}
		ecs.Emit(w, component.CameraMoveRequest{Position: pos, Weight: subject.Weight})
	})
}
