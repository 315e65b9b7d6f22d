package component

import "github.com/jakecoffman/cp"

// Box is an oriented collision box used for overlap and sweep queries.
// Angle is in radians.
type Box struct {
	Center cp.Vector
	Size   cp.Vector
	Angle  float64
}

// Translate returns the box moved by d.
func (b Box) Translate(d cp.Vector) Box {
	b.Center = b.Center.Add(d)
	return b
}

// Corners returns the four box corners in world space.
func (b Box) Corners() [4]cp.Vector {
	hw, hh := b.Size.X/2, b.Size.Y/2
	rot := cp.ForAngle(b.Angle)
	local := [4]cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	var out [4]cp.Vector
	for i, v := range local {
		out[i] = b.Center.Add(rot.Rotate(v))
	}
	return out
}

// Hit is one collision query result. Surface identifies the collider that
// was hit and Normal points out of that surface toward the query box.
type Hit struct {
	Surface uint64
	Normal  cp.Vector
	Point   cp.Vector
}
