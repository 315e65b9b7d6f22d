package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// MotionTuning holds every free parameter of the platformer controller.
// Durations are in seconds, speeds in world units per second.
type MotionTuning struct {
	MaxSpeed           float64
	GroundAcceleration float64
	AirAcceleration    float64
	MaxFallSpeed       float64

	GroundCheckDistance float64
	WallCheckDistance   float64
	GroundMask          uint
	SlideMask           uint
	BumpMask            uint

	JumpSpeed            float64
	MaxJumpDuration      float64
	JumpBufferBeforeLand float64
	JumpBufferAfterLand  float64
	JumpApexSpeed        float64

	WallJumpBuffer    float64
	WallJumpSpeed     float64
	WallStickDuration float64
	WallSlideSpeed    float64

	DashSpeed    float64
	DashDuration float64

	BumpHeadCorrection float64
	BumpWallCorrection float64
}

var MotionTuningComponent = NewComponent[MotionTuning]()

// DefaultMotionTuning mirrors the stock controller values.
func DefaultMotionTuning() MotionTuning {
	return MotionTuning{
		MaxSpeed:             5,
		GroundAcceleration:   20,
		AirAcceleration:      10,
		MaxFallSpeed:         10,
		GroundCheckDistance:  0.2,
		WallCheckDistance:    0.1,
		GroundMask:           LayerGround | LayerSlide,
		SlideMask:            LayerSlide,
		BumpMask:             LayerGround | LayerSlide | LayerBump,
		JumpSpeed:            10,
		MaxJumpDuration:      0.2,
		JumpBufferBeforeLand: 0.2,
		JumpBufferAfterLand:  0.2,
		JumpApexSpeed:        1,
		WallJumpBuffer:       0.1,
		WallJumpSpeed:        10,
		WallStickDuration:    0.25,
		WallSlideSpeed:       2,
		DashSpeed:            20,
		DashDuration:         0.15,
		BumpHeadCorrection:   0.5,
		BumpWallCorrection:   0.5,
	}
}

// Wall sides.
const (
	WallNone  = 0
	WallLeft  = -1
	WallRight = 1
)

// Motion is the per-body controller state. Latch and age timers use -1 for
// "inactive".
type Motion struct {
	Grounded bool
	Surface  uint64
	OnWall   bool
	WallSide int
	// LastWallSide survives leaving the wall so a buffered wall jump knows
	// which way to push.
	LastWallSide int

	SinceGrounded float64
	SinceOnWall   float64
	OnWallTime    float64

	JumpLatch float64
	JumpHold  float64
	DashLatch float64
	DashAge   float64

	Jumps     int
	WallJumps int
	Dashes    int

	DashVelocity cp.Vector
	// JumpLift is the vertical velocity floor reapplied during a hold.
	// JumpPush is the horizontal velocity forced during a diagonal wall
	// jump hold, zero otherwise.
	JumpLift float64
	JumpPush float64
	Facing   float64

	OldVelocity cp.Vector
	// LastY is the body height at the end of the previous tick, NaN before
	// the first one.
	LastY float64
}

var MotionComponent = NewComponent[Motion]()

// NewMotion returns a controller state that is neither grounded nor inside
// any grace window.
func NewMotion() Motion {
	return Motion{
		SinceGrounded: math.Inf(1),
		SinceOnWall:   math.Inf(1),
		OnWallTime:    -1,
		JumpLatch:     -1,
		JumpHold:      -1,
		DashLatch:     -1,
		DashAge:       -1,
		Facing:        1,
		LastY:         math.NaN(),
	}
}

// Dashing reports whether a dash is overriding velocity.
func (m *Motion) Dashing() bool {
	return m.DashAge >= 0
}

// Holding reports whether a jump hold is active.
func (m *Motion) Holding() bool {
	return m.JumpHold >= 0
}

// MotionModifier scales the controller's max speed and accelerations, for
// example while wading or carrying something.
type MotionModifier struct {
	SpeedScale        float64
	AccelerationScale float64
}

var MotionModifierComponent = NewComponent[MotionModifier]()
