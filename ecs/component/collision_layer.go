package component

// Collision category bits shared by solids, bodies and query masks.
const (
	LayerGround uint = 1 << iota
	LayerSlide
	LayerBump
	LayerBody
)

// CollisionLayer allows entities to declare a collision category and mask
// so the physics world can selectively enable/disable collisions between
// groups of objects.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics world will treat it as LayerGround.
	Category uint
	// Mask is a bitmask of categories this entity should collide with. If
	// zero, the physics world will treat it as all-bits set.
	Mask uint
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

// ParseLayer maps a level/prefab layer name to its category bit.
func ParseLayer(name string) (uint, bool) {
	switch name {
	case "ground", "":
		return LayerGround, true
	case "slide":
		return LayerSlide, true
	case "bump":
		return LayerBump, true
	case "body":
		return LayerBody, true
	}
	return 0, false
}
