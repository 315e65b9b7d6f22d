package ecs

// EventQueue is a synchronous FIFO of typed payloads. Consumers drain only
// the payload types they handle, so producers and consumers may run in any
// system order and on either clock.
type EventQueue struct {
	items []any
}

// Push adds an event.
func (q *EventQueue) Push(evt any) {
	if q == nil || evt == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of pending events of every type.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops every pending event.
func (q *EventQueue) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}

// Emit queues evt on the world.
func Emit(w *World, evt any) {
	if w == nil {
		return
	}
	w.events.Push(evt)
}

// Drain removes and returns every queued event of type T, preserving order.
func Drain[T any](w *World) []T {
	if w == nil || len(w.events.items) == 0 {
		return nil
	}
	var out []T
	kept := w.events.items[:0]
	for _, item := range w.events.items {
		if v, ok := item.(T); ok {
			out = append(out, v)
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(w.events.items); i++ {
		w.events.items[i] = nil
	}
	w.events.items = kept
	return out
}

// Peek returns queued events of type T without consuming them.
func Peek[T any](w *World) []T {
	if w == nil {
		return nil
	}
	var out []T
	for _, item := range w.events.items {
		if v, ok := item.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
