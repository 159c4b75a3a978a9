package particle

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// 未配置时的默认曲线：线性淡出 / 线性缩小
const defaultFadeCurve = "0,1 1,0"

// ParsePresets parses the particle preset YAML and compiles every preset.
//
// Parameters:
//   - data: Content of the preset YAML file
//
// Returns:
//   - map[string]*Preset: Compiled presets keyed by name
//   - error: Any error encountered during YAML parsing or value compilation
//
// Example usage:
//
//	presets, err := ParsePresets(data)
//	if err != nil {
//	    return err
//	}
//	death := presets["death"]
func ParsePresets(data []byte) (map[string]*Preset, error) {
	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse particle presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("particle preset file contains no presets")
	}

	presets := make(map[string]*Preset, len(file.Presets))
	for name, cfg := range file.Presets {
		preset, err := Compile(name, cfg)
		if err != nil {
			return nil, err
		}
		presets[name] = preset
	}
	return presets, nil
}

// Compile converts one raw preset into its parsed form.
func Compile(name string, cfg PresetConfig) (*Preset, error) {
	p := &Preset{Name: name}

	fields := []struct {
		key      string
		raw      string
		fallback string
		dst      *Value
	}{
		{"count", cfg.Count, "", &p.Count},
		{"speedX", cfg.SpeedX, "0", &p.SpeedX},
		{"speedY", cfg.SpeedY, "0", &p.SpeedY},
		{"life", cfg.Life, "", &p.Life},
		{"size", cfg.Size, "", &p.Size},
		{"alpha", cfg.Alpha, defaultFadeCurve, &p.Alpha},
		{"scale", cfg.Scale, defaultFadeCurve, &p.Scale},
	}
	for _, f := range fields {
		raw := f.raw
		if strings.TrimSpace(raw) == "" {
			if f.fallback == "" {
				return nil, fmt.Errorf("preset %q: %s is required", name, f.key)
			}
			raw = f.fallback
		}
		v, err := ParseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %s: %w", name, f.key, err)
		}
		*f.dst = v
	}

	if p.Count.IsCurve() || p.Count.Min < 0 {
		return nil, fmt.Errorf("preset %q: count must be a non-negative number or range", name)
	}
	if p.Life.IsCurve() || p.Life.Min <= 0 {
		return nil, fmt.Errorf("preset %q: life must be positive", name)
	}

	if strings.TrimSpace(cfg.Gravity) != "" {
		g, err := strconv.ParseFloat(strings.TrimSpace(cfg.Gravity), 64)
		if err != nil {
			return nil, fmt.Errorf("preset %q: invalid gravity %q: %w", name, cfg.Gravity, err)
		}
		p.HasGravity = true
		p.Gravity = g
	}

	c, err := ParseHexColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	p.Color = c

	return p, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". An empty string is white.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// Names returns preset names in sorted order.
func Names(presets map[string]*Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
