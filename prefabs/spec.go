package prefabs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownSpec = errors.New("prefabs: unknown spec file")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// MotionSpec mirrors component.MotionTuning. Masks are layer names.
type MotionSpec struct {
	MaxSpeed             float64  `yaml:"max_speed"`
	GroundAcceleration   float64  `yaml:"ground_acceleration"`
	AirAcceleration      float64  `yaml:"air_acceleration"`
	MaxFallSpeed         float64  `yaml:"max_fall_speed"`
	GroundCheckDistance  float64  `yaml:"ground_check_distance"`
	WallCheckDistance    float64  `yaml:"wall_check_distance"`
	GroundMask           []string `yaml:"ground_mask"`
	SlideMask            []string `yaml:"slide_mask"`
	BumpMask             []string `yaml:"bump_mask"`
	JumpSpeed            float64  `yaml:"jump_speed"`
	MaxJumpDuration      float64  `yaml:"max_jump_duration"`
	JumpBufferBeforeLand float64  `yaml:"jump_buffer_before_land"`
	JumpBufferAfterLand  float64  `yaml:"jump_buffer_after_land"`
	JumpApexSpeed        float64  `yaml:"jump_apex_speed"`
	WallJumpBuffer       float64  `yaml:"wall_jump_buffer"`
	WallJumpSpeed        float64  `yaml:"wall_jump_speed"`
	WallStickDuration    float64  `yaml:"wall_stick_duration"`
	WallSlideSpeed       float64  `yaml:"wall_slide_speed"`
	DashSpeed            float64  `yaml:"dash_speed"`
	DashDuration         float64  `yaml:"dash_duration"`
	BumpHeadCorrection   float64  `yaml:"bump_head_correction"`
	BumpWallCorrection   float64  `yaml:"bump_wall_correction"`
}

type AbilitiesSpec struct {
	Jumps     int `yaml:"jumps"`
	WallJumps int `yaml:"wall_jumps"`
	Dashes    int `yaml:"dashes"`
}

type PlayerSpec struct {
	Name         string        `yaml:"name"`
	Transform    TransformSpec `yaml:"transform"`
	Collider     ColliderSpec  `yaml:"collider"`
	Motion       MotionSpec    `yaml:"motion"`
	Abilities    AbilitiesSpec `yaml:"abilities"`
	AbilityGate  string        `yaml:"ability_gate"`
	CameraWeight int           `yaml:"camera_weight"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Speed      float64 `yaml:"speed"`
	SpeedPow   float64 `yaml:"speed_pow"`
	ForgetTime float64 `yaml:"forget_time"`
	OrthoSize  float64 `yaml:"ortho_size"`
	Aspect     float64 `yaml:"aspect"`
	ShakeSeed  int64   `yaml:"shake_seed"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ShakeSpec describes one shake preset. Kind is "trauma" or "sine".
// Rotation is in degrees.
type ShakeSpec struct {
	Kind       string  `yaml:"kind"`
	Duration   float64 `yaml:"duration"`
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	Rotation   float64 `yaml:"rotation"`
	Zoom       float64 `yaml:"zoom"`
	DirectionX float64 `yaml:"direction_x"`
	DirectionY float64 `yaml:"direction_y"`
}

type ShakesSpec struct {
	Presets map[string]ShakeSpec `yaml:"presets"`
}

func LoadShakesSpec() (*ShakesSpec, error) {
	spec, err := LoadSpec[ShakesSpec]("shakes.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// SpecKind names the prefab a changed file belongs to.
type SpecKind string

const (
	SpecPlayer SpecKind = "player"
	SpecCamera SpecKind = "camera"
	SpecShakes SpecKind = "shakes"
	SpecScript SpecKind = "script"
)

// Classify maps a changed path to the prefab it configures.
func Classify(path string) (SpecKind, error) {
	if isScriptFile(path) {
		return SpecScript, nil
	}
	switch strings.ToLower(filepath.Base(path)) {
	case "player.yaml":
		return SpecPlayer, nil
	case "camera.yaml":
		return SpecCamera, nil
	case "shakes.yaml":
		return SpecShakes, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSpec, path)
}
