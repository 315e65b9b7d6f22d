package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBody
)

// Contact is a begin-contact between a controlled body and a solid.
// Normal points out of the solid toward the body.
type Contact struct {
	Entity Entity
	Other  Entity
	Normal cp.Vector
}

// PhysicsWorld owns the Chipmunk space, the shapes registered per entity
// and the contacts collected during the last step.
type PhysicsWorld struct {
	space *cp.Space
	query *cp.Body

	shapeToEntity map[*cp.Shape]Entity
	entityShapes  map[Entity][]*cp.Shape
	entityBodies  map[Entity]*cp.Body

	contacts []Contact
}

// NewPhysicsWorld creates an empty space with the given gravity (y-up).
func NewPhysicsWorld(gravity cp.Vector) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(gravity)

	pw := &PhysicsWorld{
		space:         space,
		query:         cp.NewKinematicBody(),
		shapeToEntity: make(map[*cp.Shape]Entity),
		entityShapes:  make(map[Entity][]*cp.Shape),
		entityBodies:  make(map[Entity]*cp.Body),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddSolid registers a static box for e. Category selects the ground,
// slide or bump layer.
func (pw *PhysicsWorld) AddSolid(e Entity, bb cp.BB, category uint) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	if category == 0 {
		category = component.LayerGround
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, cp.ALL_CATEGORIES))
	pw.space.AddShape(shape)
	pw.track(e, shape)
	return shape
}

// AddBody creates a fixed-rotation dynamic body at origin with a box
// collider displaced by offset in the body frame. Angle is in radians.
func (pw *PhysicsWorld) AddBody(e Entity, origin cp.Vector, angle, width, height float64, offset cp.Vector, layer component.CollisionLayer) *component.PhysicsBody {
	if pw == nil || pw.space == nil || width <= 0 || height <= 0 {
		return nil
	}
	category := layer.Category
	if category == 0 {
		category = component.LayerBody
	}
	mask := layer.Mask
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(origin)
	body.SetAngle(angle)
	shape := cp.NewBox2(body, cp.NewBBForExtents(offset, width/2, height/2), 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeBody)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, mask))

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.track(e, shape)
	pw.entityBodies[e] = body
	log.Printf("physics world: entity=%s body added at (%.2f, %.2f)", e, origin.X, origin.Y)

	return &component.PhysicsBody{
		Body:    body,
		Shape:   shape,
		Width:   width,
		Height:  height,
		OffsetX: offset.X,
		OffsetY: offset.Y,
	}
}

func (pw *PhysicsWorld) track(e Entity, shape *cp.Shape) {
	pw.shapeToEntity[shape] = e
	pw.entityShapes[e] = append(pw.entityShapes[e], shape)
}

// RemoveEntity removes every shape and body registered for e.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	for _, shape := range pw.entityShapes[e] {
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
	}
	delete(pw.entityShapes, e)
	if body, ok := pw.entityBodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.entityBodies, e)
	}
}

// Step advances the simulation. Contacts from previous steps are kept until
// drained.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// DrainContacts returns and clears the collected begin-contacts.
func (pw *PhysicsWorld) DrainContacts() []Contact {
	if pw == nil {
		return nil
	}
	out := pw.contacts
	pw.contacts = nil
	return out
}

// OverlapBox returns every shape in mask overlapping box.
func (pw *PhysicsWorld) OverlapBox(box component.Box, mask uint) []component.Hit {
	if pw == nil || pw.space == nil || box.Size.X <= 0 || box.Size.Y <= 0 {
		return nil
	}
	pw.query.SetPosition(box.Center)
	pw.query.SetAngle(box.Angle)
	shape := cp.NewBox(pw.query, box.Size.X, box.Size.Y, 0)
	return pw.shapeHits(shape, mask)
}

// CastBox sweeps box along dir by dist and returns every shape in mask the
// swept volume touches. A zero distance or direction degrades to an overlap.
func (pw *PhysicsWorld) CastBox(box component.Box, dir cp.Vector, dist float64, mask uint) []component.Hit {
	if pw == nil || pw.space == nil {
		return nil
	}
	if dist <= 0 || dir.LengthSq() == 0 {
		return pw.OverlapBox(box, mask)
	}
	if box.Size.X <= 0 || box.Size.Y <= 0 {
		return nil
	}
	delta := dir.Normalize().Mult(dist)
	start := box.Corners()
	end := box.Translate(delta).Corners()
	verts := make([]cp.Vector, 0, 8)
	verts = append(verts, start[:]...)
	verts = append(verts, end[:]...)

	pw.query.SetPosition(cp.Vector{})
	pw.query.SetAngle(0)
	shape := cp.NewPolyShape(pw.query, len(verts), verts, cp.NewTransformIdentity(), 0)
	return pw.shapeHits(shape, mask)
}

func (pw *PhysicsWorld) shapeHits(shape *cp.Shape, mask uint) []component.Hit {
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask))
	var hits []component.Hit
	pw.space.ShapeQuery(shape, func(other *cp.Shape, points *cp.ContactPointSet) {
		if other.Sensor() {
			return
		}
		e, ok := pw.shapeToEntity[other]
		if !ok {
			return
		}
		hit := component.Hit{Surface: uint64(e), Normal: points.Normal.Neg()}
		if points.Count > 0 {
			hit.Point = points.Points[0].PointB
		}
		hits = append(hits, hit)
	})
	return hits
}

func (pw *PhysicsWorld) setupHandlers() {
	handler := pw.space.NewCollisionHandler(collisionTypeBody, collisionTypeSolid)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		// arbiter shapes follow the handler order: body first, solid second
		id, ok := world.shapeToEntity[shapeA]
		if !ok {
			return true
		}
		world.contacts = append(world.contacts, Contact{
			Entity: id,
			Other:  world.shapeToEntity[shapeB],
			Normal: arb.Normal().Neg(),
		})
		return true
	}
}
