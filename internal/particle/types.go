// Package particle provides data structures and parsing functionality for
// particle burst presets.
//
// Presets live in a YAML file (data/particles.yaml). Every numeric field is a
// value string that is parsed once at load time:
//   - Fixed values: "10"
//   - Ranges: "[-5 5]" (uniform random value between min and max)
//   - Keyframes over the particle's normalized age: "0,1 1,0"
//   - Keyframes with interpolation: "EaseOut 0,1 1,0"
package particle

import "image/color"

// PresetFile is the root structure of the particle preset YAML file.
type PresetFile struct {
	Presets map[string]PresetConfig `yaml:"presets"`
}

// PresetConfig is the raw (string based) form of a single burst preset.
type PresetConfig struct {
	// Count is the number of particles emitted by one burst
	Count string `yaml:"count"`

	// Launch properties (发射参数)
	SpeedX string `yaml:"speedX"` // Horizontal velocity (pixels/frame)
	SpeedY string `yaml:"speedY"` // Vertical velocity (pixels/frame), negative is up

	// Particle properties (粒子属性)
	Life  string `yaml:"life"`  // Lifetime in seconds
	Size  string `yaml:"size"`  // Radius in pixels
	Alpha string `yaml:"alpha"` // Alpha curve over normalized age, default "0,1 1,0"
	Scale string `yaml:"scale"` // Size curve over normalized age, default "0,1 1,0"

	// Gravity overrides the pool gravity for this preset (pixels/frame²), optional
	Gravity string `yaml:"gravity"`

	// Color is a hex color "#rrggbb" or "#rrggbbaa"
	Color string `yaml:"color"`
}

// Value is a parsed value string.
//
// Fixed and range values use Min/Max; curve values use Keyframes.
type Value struct {
	Min           float64
	Max           float64
	Keyframes     []Keyframe
	Interpolation string
}

// Preset is a compiled, ready to sample burst preset.
type Preset struct {
	Name string

	Count  Value
	SpeedX Value
	SpeedY Value
	Life   Value
	Size   Value
	Alpha  Value
	Scale  Value

	// HasGravity is false when the preset uses the pool gravity
	HasGravity bool
	Gravity    float64

	Color color.RGBA
}
