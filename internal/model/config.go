package model

import (
	"errors"
	"fmt"
)

// LayoutConfig holds the dimensional constants the layout engine works with.
// All lengths are in mm.
type LayoutConfig struct {
	MinWidth     float64 `json:"min_width" toml:"min_width" yaml:"min_width"`             // Smallest allowed door width
	MaxWidth     float64 `json:"max_width" toml:"max_width" yaml:"max_width"`             // Largest allowed door width
	TargetWidth  float64 `json:"target_width" toml:"target_width" yaml:"target_width"`    // Preferred door width
	MinRemainder float64 `json:"min_remainder" toml:"min_remainder" yaml:"min_remainder"` // Lower bound of the installation allowance
	MaxRemainder float64 `json:"max_remainder" toml:"max_remainder" yaml:"max_remainder"` // Upper bound of the installation allowance
	MinFillSpan  float64 `json:"min_fill_span" toml:"min_fill_span" yaml:"min_fill_span"` // Spans below this are left empty

	Upper  UpperConfig  `json:"upper" toml:"upper" yaml:"upper"`
	Advice AdviceConfig `json:"advice" toml:"advice" yaml:"advice"`

	Categories map[Category]CategoryRule `json:"categories" toml:"categories" yaml:"categories"`
}

// UpperConfig holds the anchor constants for upper (wall) sections.
type UpperConfig struct {
	HoodWidth          float64 `json:"hood_width" toml:"hood_width" yaml:"hood_width"`
	ReferenceUnitWidth float64 `json:"reference_unit_width" toml:"reference_unit_width" yaml:"reference_unit_width"` // Sink unit the reference cabinet centers on
	ReferenceOffset    float64 `json:"reference_offset" toml:"reference_offset" yaml:"reference_offset"`             // Sink unit start relative to the distributor start
	StorageHeightInset float64 `json:"storage_height_inset" toml:"storage_height_inset" yaml:"storage_height_inset"`
	HoodHeightInset    float64 `json:"hood_height_inset" toml:"hood_height_inset" yaml:"hood_height_inset"`
	Depth              float64 `json:"depth" toml:"depth" yaml:"depth"`
}

// AdviceConfig holds the thresholds used by the improvement advisor.
type AdviceConfig struct {
	ComfortMinDoor float64 `json:"comfort_min_door" toml:"comfort_min_door" yaml:"comfort_min_door"`
	ComfortMaxDoor float64 `json:"comfort_max_door" toml:"comfort_max_door" yaml:"comfort_max_door"`
	MaxWidthSpread float64 `json:"max_width_spread" toml:"max_width_spread" yaml:"max_width_spread"`
}

// DefaultLayoutConfig returns the standard cabinetry constants.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		MinWidth:     350,
		MaxWidth:     600,
		TargetWidth:  450,
		MinRemainder: 4,
		MaxRemainder: 10,
		MinFillSpan:  100,
		Upper: UpperConfig{
			HoodWidth:          800,
			ReferenceUnitWidth: 1000,
			ReferenceOffset:    100,
			StorageHeightInset: 20,
			HoodHeightInset:    60,
			Depth:              295,
		},
		Advice: AdviceConfig{
			ComfortMinDoor: 400,
			ComfortMaxDoor: 550,
			MaxWidthSpread: 100,
		},
		Categories: DefaultCategoryRules(),
	}
}

// InTolerance reports whether a leftover lies in the installation allowance.
func (c LayoutConfig) InTolerance(leftover float64) bool {
	return leftover >= c.MinRemainder && leftover <= c.MaxRemainder
}

// InBounds reports whether a door width is within [MinWidth, MaxWidth].
func (c LayoutConfig) InBounds(width float64) bool {
	return width >= c.MinWidth && width <= c.MaxWidth
}

// Rule returns the rule for a category, or the zero rule if unknown.
func (c LayoutConfig) Rule(cat Category) CategoryRule {
	if c.Categories == nil {
		return CategoryRule{}
	}
	return c.Categories[cat]
}

// Validate checks that the constants describe a usable search space.
func (c LayoutConfig) Validate() error {
	var errs []error
	if c.MinWidth <= 0 {
		errs = append(errs, fmt.Errorf("min_width must be positive, got %g", c.MinWidth))
	}
	if c.MaxWidth < c.MinWidth {
		errs = append(errs, fmt.Errorf("max_width %g is below min_width %g", c.MaxWidth, c.MinWidth))
	}
	if c.TargetWidth < c.MinWidth || c.TargetWidth > c.MaxWidth {
		errs = append(errs, fmt.Errorf("target_width %g outside [%g, %g]", c.TargetWidth, c.MinWidth, c.MaxWidth))
	}
	if c.MinRemainder < 0 || c.MaxRemainder < c.MinRemainder {
		errs = append(errs, fmt.Errorf("remainder window [%g, %g] is invalid", c.MinRemainder, c.MaxRemainder))
	}
	if c.MinFillSpan < 0 {
		errs = append(errs, fmt.Errorf("min_fill_span must not be negative, got %g", c.MinFillSpan))
	}
	if c.Upper.HoodWidth <= 0 || c.Upper.ReferenceUnitWidth <= 0 {
		errs = append(errs, errors.New("upper anchor widths must be positive"))
	}
	return errors.Join(errs...)
}
