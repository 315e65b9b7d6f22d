package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func NewLockZone(w *ecs.World, name string, x, y, width, height float64) (ecs.Entity, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("lock zone %s: invalid size %.2fx%.2f", name, width, height)
	}
	zone := ecs.CreateEntity(w)
	if err := ecs.Add(w, zone, component.LockZoneComponent.Kind(), &component.LockZone{
		Name:   name,
		Bounds: cp.NewBBForExtents(cp.Vector{X: x, Y: y}, width/2, height/2),
	}); err != nil {
		return 0, fmt.Errorf("lock zone %s: add zone: %w", name, err)
	}
	return zone, nil
}
