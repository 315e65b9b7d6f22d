package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Level is a hand-authored room: a spawn point plus typed entities whose
// props are decoded by the entity builders.
type Level struct {
	Name     string   `yaml:"name"`
	Spawn    Point    `yaml:"spawn"`
	Gravity  float64  `yaml:"gravity"`
	Entities []Entity `yaml:"entities"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Entity struct {
	Type  string         `yaml:"type"`
	X     float64        `yaml:"x"`
	Y     float64        `yaml:"y"`
	Props map[string]any `yaml:"props,omitempty"`
}

// LoadLevel reads levels/<name> from disk when present, otherwise from the
// embedded copy.
func LoadLevel(name string) (*Level, error) {
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = LevelsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	return &lvl, nil
}
