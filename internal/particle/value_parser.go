package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Keyframe represents a single keyframe in an animation curve.
// Used for animating particle properties over the particle's life (alpha, scale).
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// interpolationKeywords 支持的插值关键字
var interpolationKeywords = []string{"Linear", "EaseIn", "EaseOut", "FastInOutWeak"}

// ParseValue parses a value string from a particle preset.
// Supports multiple formats:
//   - Fixed value: "10" → min=10, max=10, keyframes=nil
//   - Range: "[0.5 1.0]" → min=0.5, max=1.0, keyframes=nil
//   - Single value range: "[3]" → min=3, max=3
//   - Keyframes: "0,1 1,0" → keyframes=[{time:0, value:1}, {time:1, value:0}]
//   - Interpolation: "EaseOut 0,1 1,0" → keyframes with interpolation="EaseOut"
//
// Returns an error for anything else, so a typo in a data file fails at load time.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, nil
	}

	// Check for range format: "[min max]" or "[value]"
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Value{}, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			val, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Value{}, fmt.Errorf("invalid range value %q: %w", s, err)
			}
			return Value{Min: val, Max: val}, nil
		case 2:
			min, err1 := strconv.ParseFloat(parts[0], 64)
			max, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				return Value{}, fmt.Errorf("invalid range %q", s)
			}
			if min > max {
				min, max = max, min
			}
			return Value{Min: min, Max: max}, nil
		default:
			return Value{}, fmt.Errorf("range %q must have one or two values", s)
		}
	}

	// Check for interpolation keywords
	interpolation := ""
	for _, keyword := range interpolationKeywords {
		if strings.Contains(s, keyword) {
			interpolation = keyword
			s = strings.TrimSpace(strings.ReplaceAll(s, keyword, ""))
			break
		}
	}

	// Keyframes format: "time,value time,value ..."
	if strings.Contains(s, ",") || interpolation != "" {
		parts := strings.Fields(s)
		keyframes := make([]Keyframe, 0, len(parts))
		for _, part := range parts {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				return Value{}, fmt.Errorf("invalid keyframe %q in %q", part, s)
			}
			t, err1 := strconv.ParseFloat(pair[0], 64)
			v, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 != nil || err2 != nil {
				return Value{}, fmt.Errorf("invalid keyframe %q in %q", part, s)
			}
			if len(keyframes) > 0 && t < keyframes[len(keyframes)-1].Time {
				return Value{}, fmt.Errorf("keyframes in %q must be sorted by time", s)
			}
			keyframes = append(keyframes, Keyframe{Time: t, Value: v})
		}
		if len(keyframes) == 0 {
			return Value{}, fmt.Errorf("no keyframes in %q", s)
		}
		return Value{Keyframes: keyframes, Interpolation: interpolation}, nil
	}

	// Fixed value format
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Value{Min: value, Max: value}, nil
}

// IsCurve reports whether the value is a keyframe curve.
func (v Value) IsCurve() bool {
	return len(v.Keyframes) > 0
}

// Sample returns a random value in [Min, Max].
// For curves it returns the value at t=0.
func (v Value) Sample(rng *rand.Rand) float64 {
	if v.IsCurve() {
		return v.At(0)
	}
	return RandomInRange(rng, v.Min, v.Max)
}

// At evaluates the value at normalized time t (0-1).
// Fixed and range values return Min.
func (v Value) At(t float64) float64 {
	if !v.IsCurve() {
		return v.Min
	}
	return EvaluateKeyframes(v.Keyframes, t, v.Interpolation)
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// Parameters:
//   - keyframes: Array of keyframes (must be sorted by Time)
//   - t: Normalized time (0-1)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", etc.)
//
// Returns the interpolated value at time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	// Clamp t to [0, 1]
	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	// Find the keyframe interval containing t
	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio // Quadratic ease-in
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio) // Quadratic ease-out
			case "FastInOutWeak":
				ratio = ratio * ratio * (3 - 2*ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	// If t is beyond the last keyframe, return the last value
	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max].
// A nil rng falls back to the global math/rand source.
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}
