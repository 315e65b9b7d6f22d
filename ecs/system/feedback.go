package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// FeedbackSystem turns allowed jumps and dashes into screen shake using the
// named presets "dash" and "wall_jump".
type FeedbackSystem struct {
	Presets map[string]prefabs.ShakeSpec
}

func NewFeedbackSystem(presets map[string]prefabs.ShakeSpec) *FeedbackSystem {
	return &FeedbackSystem{Presets: presets}
}

func (f *FeedbackSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, evt := range ecs.Drain[component.JumpedEvent](w) {
		if evt.Kind == component.JumpWall {
			f.shake(w, "wall_jump")
		}
	}
	for range ecs.Drain[component.DashedEvent](w) {
		f.shake(w, "dash")
	}
}

func (f *FeedbackSystem) shake(w *ecs.World, name string) {
	spec, ok := f.Presets[name]
	if !ok {
		return
	}
	effect, err := NewShakeEffect(spec)
	if err != nil {
		log.Printf("feedback: preset %s: %v", name, err)
		return
	}
	ecs.Emit(w, component.ShakeAddRequest{Effect: effect})
}
