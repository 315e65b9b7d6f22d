package ecs

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

// Add stores value for e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind.Name())
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s on %s", component.ErrEntityNotAlive, kind.Name(), e)
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, kind, false)
	return s != nil && s.has(e.id())
}

// Get returns the stored pointer so callers mutate components in place.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	v := s.get(e.id())
	return v, v != nil
}

// First returns the first live entity holding kind, in store order.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0, nil, false
	}
	for i, e := range s.owners {
		if IsAlive(w, e) {
			return e, s.values[i], true
		}
	}
	return 0, nil, false
}

// ForEach visits every live entity holding kind. The owner list is copied
// first so fn may add or remove components.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	owners := append([]Entity(nil), s.owners...)
	for _, e := range owners {
		if !IsAlive(w, e) {
			continue
		}
		if v := s.get(e.id()); v != nil {
			fn(e, v)
		}
	}
}
