package system

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// decay returns the remaining strength of an effect, easing out
// quadratically. A non-positive duration never decays.
func decay(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	if elapsed >= duration {
		return 0
	}
	k := 1 - elapsed/duration
	return k * k
}

// TraumaShake jitters the camera with fresh random samples every frame.
type TraumaShake struct {
	Amplitude cp.Vector
	// MaxRotation is in degrees.
	MaxRotation float64
	MaxZoom     float64
	Duration    float64

	elapsed  float64
	offset   cp.Vector
	rotation float64
	zoom     float64
}

func (s *TraumaShake) Update(dt float64, rng *rand.Rand) {
	s.elapsed += dt
	k := decay(s.elapsed, s.Duration)
	s.offset = cp.Vector{
		X: (rng.Float64()*2 - 1) * s.Amplitude.X * k,
		Y: (rng.Float64()*2 - 1) * s.Amplitude.Y * k,
	}
	s.rotation = (rng.Float64()*2 - 1) * s.MaxRotation * k
	s.zoom = rng.Float64() * s.MaxZoom * k
}

func (s *TraumaShake) Offset() cp.Vector { return s.offset }
func (s *TraumaShake) Rotation() float64 { return s.rotation }
func (s *TraumaShake) Zoom() float64     { return s.zoom }
func (s *TraumaShake) Done() bool        { return s.Duration > 0 && s.elapsed >= s.Duration }

// SineShake oscillates along Direction with a random starting phase.
type SineShake struct {
	Direction cp.Vector
	Amplitude float64
	Frequency float64
	// PeakRotation is in degrees.
	PeakRotation float64
	PeakZoom     float64
	Duration     float64

	elapsed float64
	phase   float64
	started bool
	value   float64
}

func (s *SineShake) Update(dt float64, rng *rand.Rand) {
	if !s.started {
		s.phase = rng.Float64() * 2 * math.Pi
		s.started = true
	}
	s.elapsed += dt
	s.value = math.Sin(2*math.Pi*s.Frequency*s.elapsed+s.phase) * decay(s.elapsed, s.Duration)
}

func (s *SineShake) Offset() cp.Vector {
	dir := s.Direction
	if dir.LengthSq() == 0 {
		dir = cp.Vector{X: 1}
	}
	return dir.Normalize().Mult(s.Amplitude * s.value)
}

func (s *SineShake) Rotation() float64 { return s.PeakRotation * s.value }
func (s *SineShake) Zoom() float64     { return s.PeakZoom * s.value }
func (s *SineShake) Done() bool        { return s.Duration > 0 && s.elapsed >= s.Duration }

// NewShakeEffect builds an effect from a preset.
func NewShakeEffect(spec prefabs.ShakeSpec) (component.ShakeEffect, error) {
	switch spec.Kind {
	case "trauma", "":
		return &TraumaShake{
			Amplitude:   cp.Vector{X: spec.Amplitude, Y: spec.Amplitude},
			MaxRotation: spec.Rotation,
			MaxZoom:     spec.Zoom,
			Duration:    spec.Duration,
		}, nil
	case "sine":
		return &SineShake{
			Direction:    cp.Vector{X: spec.DirectionX, Y: spec.DirectionY},
			Amplitude:    spec.Amplitude,
			Frequency:    spec.Frequency,
			PeakRotation: spec.Rotation,
			PeakZoom:     spec.Zoom,
			Duration:     spec.Duration,
		}, nil
	}
	return nil, fmt.Errorf("shake: unknown kind %q", spec.Kind)
}
