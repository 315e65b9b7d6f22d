package component

import "github.com/jakecoffman/cp"

// Event payloads carried by the world event queue.

type JumpStartEvent struct{ Entity uint64 }

type JumpEndEvent struct{ Entity uint64 }

type DashStartEvent struct{ Entity uint64 }

type JumpKind int

const (
	JumpGround JumpKind = iota
	JumpAir
	JumpWall
)

func (k JumpKind) String() string {
	switch k {
	case JumpGround:
		return "ground"
	case JumpAir:
		return "air"
	case JumpWall:
		return "wall"
	}
	return "unknown"
}

// JumpedEvent reports a jump the ability gate allowed.
type JumpedEvent struct {
	Entity uint64
	Kind   JumpKind
	Index  int
}

// DashedEvent reports a dash the ability gate allowed.
type DashedEvent struct {
	Entity    uint64
	Index     int
	Direction cp.Vector
}

// CollisionContactEvent is emitted when a body starts touching a solid.
// Normal points out of the solid toward the body.
type CollisionContactEvent struct {
	Entity uint64
	Other  uint64
	Normal cp.Vector
}

type CameraMoveRequest struct {
	Position cp.Vector
	Weight   int
}

type CameraInstantMoveRequest struct {
	Position cp.Vector
	Weight   int
}

// LockRegionRequest replaces the camera lock region. A nil Region clears it.
type LockRegionRequest struct {
	Region *cp.BB
}

// ShakeRequest is implemented by the shake add/stop payloads so the
// compositor can drain both in queue order.
type ShakeRequest interface {
	shakeRequest()
}

type ShakeAddRequest struct {
	Effect ShakeEffect
}

type ShakeStopRequest struct{}

func (ShakeAddRequest) shakeRequest()  {}
func (ShakeStopRequest) shakeRequest() {}
