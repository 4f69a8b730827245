// Package compare implements the per-domain comparators and the report
// builder: pure functions that turn two canonical node sets into a flat
// list of property-level comparison results classified against per-domain
// tolerances.
package compare

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tolerance holds the maximum diff still classified as a match, per
// domain. Typography tolerance applies to its numeric fields only; string
// fields and tokens always compare exactly.
type Tolerance struct {
	Color      float64
	Typography float64
	Spacing    float64
	Radius     float64
	Shadow     float64
	Layout     float64
}

// DefaultTolerance returns the hardcoded per-domain defaults.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Color:      2,
		Typography: 0.8,
		Spacing:    1,
		Radius:     0.8,
		Shadow:     3,
		Layout:     1.5,
	}
}

// ToleranceConfig carries optional per-domain overrides, merged over the
// defaults at report-builder entry. Nil fields keep the default.
type ToleranceConfig struct {
	Color      *float64 `json:"color,omitempty" toml:"color"`
	Typography *float64 `json:"typography,omitempty" toml:"typography"`
	Spacing    *float64 `json:"spacing,omitempty" toml:"spacing"`
	Radius     *float64 `json:"radius,omitempty" toml:"radius"`
	Shadow     *float64 `json:"shadow,omitempty" toml:"shadow"`
	Layout     *float64 `json:"layout,omitempty" toml:"layout"`
}

// Resolve merges the overrides over base and returns the effective
// tolerance for one comparison run.
func (c ToleranceConfig) Resolve(base Tolerance) Tolerance {
	if c.Color != nil {
		base.Color = *c.Color
	}
	if c.Typography != nil {
		base.Typography = *c.Typography
	}
	if c.Spacing != nil {
		base.Spacing = *c.Spacing
	}
	if c.Radius != nil {
		base.Radius = *c.Radius
	}
	if c.Shadow != nil {
		base.Shadow = *c.Shadow
	}
	if c.Layout != nil {
		base.Layout = *c.Layout
	}
	return base
}

// toleranceFile is the on-disk TOML shape:
//
//	[tolerance]
//	color = 4.0
//	spacing = 2.0
type toleranceFile struct {
	Tolerance ToleranceConfig `toml:"tolerance"`
}

// LoadToleranceConfig reads per-domain overrides from a TOML file.
func LoadToleranceConfig(path string) (ToleranceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ToleranceConfig{}, fmt.Errorf("read tolerance config: %w", err)
	}

	var file toleranceFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return ToleranceConfig{}, fmt.Errorf("parse tolerance config %s: %w", path, err)
	}
	return file.Tolerance, nil
}
