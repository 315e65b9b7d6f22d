package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewSolid creates a static box of level geometry centered at (x, y).
func NewSolid(w *ecs.World, x, y, width, height float64, layer string) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("solid: %w", ErrNoPhysicsWorld)
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("solid: invalid size %.2fx%.2f", width, height)
	}
	category, ok := component.ParseLayer(layer)
	if !ok {
		return 0, fmt.Errorf("solid: unknown layer %q", layer)
	}

	solid := ecs.CreateEntity(w)
	if err := ecs.Add(w, solid, component.SolidTagComponent.Kind(), &component.SolidTag{}); err != nil {
		return 0, fmt.Errorf("solid: add tag: %w", err)
	}
	if err := ecs.Add(w, solid, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("solid: add transform: %w", err)
	}
	if err := ecs.Add(w, solid, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: category}); err != nil {
		return 0, fmt.Errorf("solid: add collision layer: %w", err)
	}

	shape := pw.AddSolid(solid, cp.NewBBForExtents(cp.Vector{X: x, Y: y}, width/2, height/2), category)
	if err := ecs.Add(w, solid, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:   shape.Body(),
		Shape:  shape,
		Width:  width,
		Height: height,
		Static: true,
	}); err != nil {
		return 0, fmt.Errorf("solid: add physics body: %w", err)
	}
	return solid, nil
}
