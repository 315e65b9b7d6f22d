package ecs

import "fmt"

// Entity is a generational handle: the low 32 bits select a slot, the high
// 32 bits count how often that slot has been reused. A handle kept past
// DestroyEntity no longer matches its slot and reads as dead.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID { return entityID(e & 0xffffffff) }

func (e Entity) generation() generation { return generation(e >> 32) }

// String renders slot and generation, e.g. "7v2".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

// Valid reports whether e could refer to an entity. Slot 0 is never handed
// out, so the zero Entity is invalid.
func (e Entity) Valid() bool { return e.id() != 0 }
