package component

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

// ShakeEffect contributes an offset, a rotation in degrees and an ortho size
// delta. Effects decay on their own; Update is called once per frame with
// the compositor's shared random source.
type ShakeEffect interface {
	Update(dt float64, rng *rand.Rand)
	Offset() cp.Vector
	Rotation() float64
	Zoom() float64
}

// FiniteShake is implemented by effects that know when they stop
// contributing. The compositor drops them once Done reports true.
type FiniteShake interface {
	Done() bool
}

// ScreenShake is the additive shake layer owned by a camera entity.
type ScreenShake struct {
	Seed    int64
	Effects []ShakeEffect
	Rand    *rand.Rand

	Offset   cp.Vector
	Rotation float64
	Zoom     float64
}

var ScreenShakeComponent = NewComponent[ScreenShake]()
