package component

// Transform is the authoring pose of an entity. Rotation is in degrees;
// systems convert it to radians once when building collision poses.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
