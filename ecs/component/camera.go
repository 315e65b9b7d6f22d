package component

import "github.com/jakecoffman/cp"

// Camera is the follow tuning and viewport of a camera entity.
type Camera struct {
	MinSpeed   float64
	MaxSpeed   float64
	Speed      float64
	SpeedPow   float64
	ForgetTime float64
	// OrthoSize is the base half height of the view in world units.
	OrthoSize float64
	Aspect    float64
}

var CameraComponent = NewComponent[Camera]()

// CameraTarget is one weighted follow target. Order records insertion so
// equal weights resolve to the earliest entry.
type CameraTarget struct {
	Position cp.Vector
	Weight   int
	Age      float64
	Order    int
}

// CameraState is the tracked camera position and its live targets.
type CameraState struct {
	Position cp.Vector
	Targets  []CameraTarget
	Lock     *cp.BB

	nextOrder int
}

var CameraStateComponent = NewComponent[CameraState]()

// UpdateTarget refreshes the target with the given weight or inserts it.
func (s *CameraState) UpdateTarget(pos cp.Vector, weight int) {
	for i := range s.Targets {
		if s.Targets[i].Weight != weight {
			continue
		}
		s.Targets[i].Position = pos
		s.Targets[i].Age = 0
		return
	}
	s.Targets = append(s.Targets, CameraTarget{Position: pos, Weight: weight, Order: s.nextOrder})
	s.nextOrder++
}

// Best returns the live target with the highest weight. Ties go to the
// lowest insertion order.
func (s *CameraState) Best() (CameraTarget, bool) {
	var best CameraTarget
	found := false
	for _, t := range s.Targets {
		if !found || t.Weight > best.Weight || (t.Weight == best.Weight && t.Order < best.Order) {
			best = t
			found = true
		}
	}
	return best, found
}

// CameraSubject makes an entity push its position as a camera target every
// fixed tick.
type CameraSubject struct {
	Weight  int
	Offset  cp.Vector
	Instant bool
}

var CameraSubjectComponent = NewComponent[CameraSubject]()
