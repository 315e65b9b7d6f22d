package component

import "github.com/jakecoffman/cp"

// LockZone is a level area that becomes the camera lock region when a camera
// subject enters it.
type LockZone struct {
	Bounds cp.BB
	Name   string

	inside bool
}

var LockZoneComponent = NewComponent[LockZone]()

// Enter marks the zone occupied and reports whether this is a new entry.
func (z *LockZone) Enter() bool {
	if z.inside {
		return false
	}
	z.inside = true
	return true
}

// Leave clears the occupied flag.
func (z *LockZone) Leave() {
	z.inside = false
}

// Occupied reports whether a subject is inside the zone.
func (z *LockZone) Occupied() bool {
	return z.inside
}
