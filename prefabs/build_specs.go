package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeProps re-decodes a loosely typed props map (as read from a level
// file) into T.
func DecodeProps[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("prefabs: encode props: %w", err)
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, fmt.Errorf("prefabs: decode props: %w", err)
	}
	return out, nil
}

// SolidProps configures a static level box.
type SolidProps struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Layer  string  `yaml:"layer"`
}

// LockZoneProps configures a camera lock region. The box is centered on
// the entity position.
type LockZoneProps struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
