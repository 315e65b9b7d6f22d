package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a world.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind identifies one component store. Two kinds declared for the
// same Go type are still distinct stores. The zero kind is invalid.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// Name is the Go type name of T, used in logs and errors.
func (k ComponentKind[T]) Name() string { return k.name }

// ComponentHandle is how packages declare kinds:
//
//	var MotionComponent = NewComponent[Motion]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: reflect.TypeFor[T]().Name(),
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
