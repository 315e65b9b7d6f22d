package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
)

var (
	castDown  = cp.Vector{X: 0, Y: -1}
	castLeft  = cp.Vector{X: -1, Y: 0}
	castRight = cp.Vector{X: 1, Y: 0}
)

// groundNormal accepts surfaces whose normal is at most ~18 degrees off
// vertical.
func groundNormal(n cp.Vector) bool {
	return n.Y >= 0 && n.Y >= 3*abs(n.X)
}

func wallNormal(n cp.Vector) bool {
	return abs(n.X) >= 3*abs(n.Y)
}

// detectGround sweeps the collider down. The previously attached surface
// is kept when it is still hit, otherwise the last valid hit wins.
func detectGround(q CollisionQuerier, self uint64, m *component.Motion, t *component.MotionTuning, box component.Box, dt float64) {
	var surface uint64
	for _, hit := range q.CastBox(box, castDown, t.GroundCheckDistance, t.GroundMask) {
		if hit.Surface == self || !groundNormal(hit.Normal) {
			continue
		}
		if m.Surface != 0 && hit.Surface == m.Surface {
			surface = hit.Surface
			break
		}
		surface = hit.Surface
	}

	m.Surface = surface
	m.Grounded = surface != 0
	if m.Grounded {
		m.SinceGrounded = 0
	} else {
		m.SinceGrounded += dt
	}
}

// detectWall runs only while airborne. Once attached, only the attached
// side is checked. A zero check distance degrades to an overlap test.
func detectWall(q CollisionQuerier, self uint64, m *component.Motion, t *component.MotionTuning, box component.Box, dt float64) {
	side := component.WallNone
	if !m.Grounded {
		switch {
		case m.OnWall:
			if wallAt(q, self, t, box, m.WallSide) {
				side = m.WallSide
			}
		case wallAt(q, self, t, box, component.WallLeft):
			side = component.WallLeft
		case wallAt(q, self, t, box, component.WallRight):
			side = component.WallRight
		}
	}

	if side == component.WallNone {
		m.OnWall = false
		m.WallSide = component.WallNone
		m.OnWallTime = -1
		m.SinceOnWall += dt
		return
	}

	m.OnWall = true
	m.WallSide = side
	m.LastWallSide = side
	m.SinceOnWall = 0
	if m.OnWallTime < 0 {
		m.OnWallTime = 0
	}
	m.OnWallTime += dt
}

// wallAt reports a grabbable wall on side: a solid ground-mask wall with no
// slide surface in the same direction.
func wallAt(q CollisionQuerier, self uint64, t *component.MotionTuning, box component.Box, side int) bool {
	dir := castRight
	if side == component.WallLeft {
		dir = castLeft
	}
	if !anyWallHit(q.CastBox(box, dir, t.WallCheckDistance, t.GroundMask), self, dir) {
		return false
	}
	if t.SlideMask == 0 {
		return true
	}
	return !anyWallHit(q.CastBox(box, dir, t.WallCheckDistance, t.SlideMask), self, dir)
}

// anyWallHit only counts normals facing back along dir, so an overlap
// result is attributed to the correct side.
func anyWallHit(hits []component.Hit, self uint64, dir cp.Vector) bool {
	for _, hit := range hits {
		if hit.Surface != self && wallNormal(hit.Normal) && hit.Normal.Dot(dir) < 0 {
			return true
		}
	}
	return false
}
