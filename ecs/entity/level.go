package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// LoadLevel creates the level's solids and lock zones. Unknown entity types
// are logged and skipped.
func LoadLevel(w *ecs.World, lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}
	for i, ent := range lvl.Entities {
		switch ent.Type {
		case "solid":
			props, err := prefabs.DecodeProps[prefabs.SolidProps](ent.Props)
			if err != nil {
				return fmt.Errorf("level %s: entity %d: %w", lvl.Name, i, err)
			}
			if _, err := NewSolid(w, ent.X, ent.Y, props.Width, props.Height, props.Layer); err != nil {
				return fmt.Errorf("level %s: entity %d: %w", lvl.Name, i, err)
			}
		case "lock_zone":
			props, err := prefabs.DecodeProps[prefabs.LockZoneProps](ent.Props)
			if err != nil {
				return fmt.Errorf("level %s: entity %d: %w", lvl.Name, i, err)
			}
			if _, err := NewLockZone(w, props.Name, ent.X, ent.Y, props.Width, props.Height); err != nil {
				return fmt.Errorf("level %s: entity %d: %w", lvl.Name, i, err)
			}
		default:
			log.Printf("level %s: entity %d: unknown type %q skipped", lvl.Name, i, ent.Type)
		}
	}
	return nil
}
