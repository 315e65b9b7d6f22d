package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/seehuhn/mt19937"
)

// ScreenShakeSystem composites every active shake effect on the camera by
// summation. It runs on the frame tick after the camera.
type ScreenShakeSystem struct{}

func NewScreenShakeSystem() *ScreenShakeSystem {
	return &ScreenShakeSystem{}
}

// NewShakeRand returns the compositor's MT19937-backed random source.
func NewShakeRand(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}

func (s *ScreenShakeSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	requests := ecs.Drain[component.ShakeRequest](w)
	_, shake, ok := ecs.First(w, component.ScreenShakeComponent.Kind())
	if !ok {
		return
	}

	for _, req := range requests {
		switch r := req.(type) {
		case component.ShakeAddRequest:
			if r.Effect != nil {
				shake.Effects = append(shake.Effects, r.Effect)
			}
		case component.ShakeStopRequest:
			shake.Effects = nil
		}
	}

	CompositeShake(shake, dt)
}

// CompositeShake advances every effect with the shared random source and
// stores the summed contribution. Effects reporting Done are dropped.
func CompositeShake(shake *component.ScreenShake, dt float64) {
	if shake.Rand == nil {
		shake.Rand = NewShakeRand(shake.Seed)
	}

	var offset cp.Vector
	rotation, zoom := 0.0, 0.0
	active := shake.Effects[:0]
	for _, effect := range shake.Effects {
		effect.Update(dt, shake.Rand)
		if finite, ok := effect.(component.FiniteShake); ok && finite.Done() {
			continue
		}
		offset = offset.Add(effect.Offset())
		rotation += effect.Rotation()
		zoom += effect.Zoom()
		active = append(active, effect)
	}
	for i := len(active); i < len(shake.Effects); i++ {
		shake.Effects[i] = nil
	}
	shake.Effects = active

	shake.Offset = offset
	shake.Rotation = rotation
	shake.Zoom = zoom
}
