package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// MotionTuningFromSpec converts a prefab motion block. Empty mask lists
// keep the default masks; missing scalar keys read as zero.
func MotionTuningFromSpec(spec prefabs.MotionSpec) (component.MotionTuning, error) {
	t := component.DefaultMotionTuning()
	t.MaxSpeed = spec.MaxSpeed
	t.GroundAcceleration = spec.GroundAcceleration
	t.AirAcceleration = spec.AirAcceleration
	t.MaxFallSpeed = spec.MaxFallSpeed
	t.GroundCheckDistance = spec.GroundCheckDistance
	t.WallCheckDistance = spec.WallCheckDistance
	t.JumpSpeed = spec.JumpSpeed
	t.MaxJumpDuration = spec.MaxJumpDuration
	t.JumpBufferBeforeLand = spec.JumpBufferBeforeLand
	t.JumpBufferAfterLand = spec.JumpBufferAfterLand
	t.JumpApexSpeed = spec.JumpApexSpeed
	t.WallJumpBuffer = spec.WallJumpBuffer
	t.WallJumpSpeed = spec.WallJumpSpeed
	t.WallStickDuration = spec.WallStickDuration
	t.WallSlideSpeed = spec.WallSlideSpeed
	t.DashSpeed = spec.DashSpeed
	t.DashDuration = spec.DashDuration
	t.BumpHeadCorrection = spec.BumpHeadCorrection
	t.BumpWallCorrection = spec.BumpWallCorrection

	masks := []struct {
		name  string
		names []string
		dst   *uint
	}{
		{"ground_mask", spec.GroundMask, &t.GroundMask},
		{"slide_mask", spec.SlideMask, &t.SlideMask},
		{"bump_mask", spec.BumpMask, &t.BumpMask},
	}
	for _, m := range masks {
		if len(m.names) == 0 {
			continue
		}
		mask, err := ParseMask(m.names)
		if err != nil {
			return component.MotionTuning{}, fmt.Errorf("%s: %w", m.name, err)
		}
		*m.dst = mask
	}
	return t, nil
}

// ParseMask ORs the category bits of the named layers.
func ParseMask(names []string) (uint, error) {
	var mask uint
	for _, name := range names {
		bit, ok := component.ParseLayer(name)
		if !ok {
			return 0, fmt.Errorf("unknown layer %q", name)
		}
		mask |= bit
	}
	return mask, nil
}

func CameraFromSpec(spec prefabs.CameraSpec) component.Camera {
	return component.Camera{
		MinSpeed:   spec.MinSpeed,
		MaxSpeed:   spec.MaxSpeed,
		Speed:      spec.Speed,
		SpeedPow:   spec.SpeedPow,
		ForgetTime: spec.ForgetTime,
		OrthoSize:  spec.OrthoSize,
		Aspect:     spec.Aspect,
	}
}
