package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color that reads and writes as "#rrggbb".
type Color struct {
	colorful.Color
}

// MustHex parses a hex color and panics on malformed input. Intended for
// literals only.
func MustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return Color{c}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := colorful.Hex(string(text))
	if err != nil {
		return fmt.Errorf("color %q: %w", text, err)
	}
	c.Color = parsed
	return nil
}

// Parameters drives galaxy generation and animation.
type Parameters struct {
	Count           int     `toml:"count"`
	Size            float64 `toml:"size"`
	Radius          float64 `toml:"radius"`
	Branches        int     `toml:"branches"`
	Spin            float64 `toml:"spin"`
	RandomnessPower float64 `toml:"randomness_power"`
	RotationSpeed   float64 `toml:"rotation_speed"`
	InsideColor     Color   `toml:"inside_color"`
	OutsideColor    Color   `toml:"outside_color"`
}

func Default() Parameters {
	return Parameters{
		Count:           150000,
		Size:            0.025,
		Radius:          4.8,
		Branches:        3,
		Spin:            1,
		RandomnessPower: 2.27,
		RotationSpeed:   0.1,
		InsideColor:     MustHex("#ff6030"),
		OutsideColor:    MustHex("#151ffc"),
	}
}

// Range bounds an editable numeric field.
type Range struct {
	Min, Max, Step float64
}

// Clamp snaps v onto the step grid anchored at Min and keeps it in bounds.
func (r Range) Clamp(v float64) float64 {
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

var (
	CountRange           = Range{Min: 100, Max: MaxCount, Step: 10000}
	SizeRange            = Range{Min: 0.001, Max: 0.1, Step: 0.001}
	RadiusRange          = Range{Min: 0.01, Max: 20, Step: 0.01}
	BranchesRange        = Range{Min: 2, Max: 10, Step: 1}
	SpinRange            = Range{Min: -1, Max: 1, Step: 0.001}
	RandomnessPowerRange = Range{Min: 0, Max: 10, Step: 0.01}
	RotationSpeedRange   = Range{Min: 0, Max: 5, Step: 0.01}
)

// MaxCount caps the number of generated points whatever the source of the
// value, so oversized config files cannot exhaust memory.
const MaxCount = 500000

// Validate reports every field the generator would have to clamp.
func (p Parameters) Validate() error {
	var errs []error
	if p.Count < 0 {
		errs = append(errs, fmt.Errorf("count %d is negative", p.Count))
	}
	if p.Count > MaxCount {
		errs = append(errs, fmt.Errorf("count %d exceeds %d", p.Count, MaxCount))
	}
	if p.Branches < 1 {
		errs = append(errs, fmt.Errorf("branches %d is below 1", p.Branches))
	}
	if p.Radius < 0 || math.IsNaN(p.Radius) {
		errs = append(errs, fmt.Errorf("radius %g is negative", p.Radius))
	}
	if p.RandomnessPower < 0 || math.IsNaN(p.RandomnessPower) {
		errs = append(errs, fmt.Errorf("randomness power %g is negative", p.RandomnessPower))
	}
	if p.Size <= 0 {
		errs = append(errs, fmt.Errorf("size %g is not positive", p.Size))
	}
	return errors.Join(errs...)
}

// Clamped returns p with every out-of-range field moved to its nearest valid
// value. The receiver is not modified.
func (p Parameters) Clamped() Parameters {
	p.Count = min(max(p.Count, 0), MaxCount)
	p.Branches = max(p.Branches, 1)
	if !(p.Radius >= 0) {
		p.Radius = 0
	}
	if !(p.RandomnessPower >= 0) {
		p.RandomnessPower = 0
	}
	if !(p.Size > 0) {
		p.Size = SizeRange.Min
	}
	return p
}
