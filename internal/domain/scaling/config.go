package scaling

import (
	engerr "github.com/grimveil/dicebound/internal/errors"
)

// Region maps a bracket of levels onto a band of the power curve.
// Adjacent regions overlap; no level may fall in a gap between them.
type Region struct {
	MinLevel int     `json:"min_level" yaml:"min_level"`
	MaxLevel int     `json:"max_level" yaml:"max_level"`
	MinPower float64 `json:"min_power" yaml:"min_power"`
	MaxPower float64 `json:"max_power" yaml:"max_power"`
}

// Config drives the level-to-power curve and value fuzzing
type Config struct {
	Regions            []Region `json:"regions" yaml:"regions"`
	MaxItemLevel       int      `json:"max_item_level" yaml:"max_item_level"`
	DefaultFuzzPercent float64  `json:"default_fuzz_percent" yaml:"default_fuzz_percent"`
	MinAbsoluteFuzz    float64  `json:"min_absolute_fuzz" yaml:"min_absolute_fuzz"`
}

// DefaultConfig returns the tuned six-region curve: power near 0 at level 1
// and reaching 1.0 at level 100.
func DefaultConfig() *Config {
	return &Config{
		Regions: []Region{
			{MinLevel: 1, MaxLevel: 20, MinPower: 0.00, MaxPower: 0.18},
			{MinLevel: 15, MaxLevel: 35, MinPower: 0.14, MaxPower: 0.34},
			{MinLevel: 30, MaxLevel: 50, MinPower: 0.30, MaxPower: 0.50},
			{MinLevel: 45, MaxLevel: 65, MinPower: 0.46, MaxPower: 0.66},
			{MinLevel: 60, MaxLevel: 80, MinPower: 0.62, MaxPower: 0.82},
			{MinLevel: 75, MaxLevel: 100, MinPower: 0.78, MaxPower: 1.00},
		},
		MaxItemLevel:       100,
		DefaultFuzzPercent: 0.15,
		MinAbsoluteFuzz:    1.0,
	}
}

// Validate checks the region geometry: ordered brackets, each adjacent
// pair overlapping, at most two regions covering any level, and power
// bands that never step backwards.
func (c *Config) Validate() error {
	if len(c.Regions) < 2 {
		return engerr.Validation("scaling config requires at least two regions")
	}
	if c.MaxItemLevel < 1 {
		return engerr.Validation("scaling config requires a positive max_item_level")
	}
	if c.DefaultFuzzPercent < 0 || c.MinAbsoluteFuzz < 0 {
		return engerr.Validation("scaling config fuzz settings must be non-negative")
	}

	for i, r := range c.Regions {
		if r.MaxLevel <= r.MinLevel {
			return engerr.Validationf("scaling region %d: max_level %d <= min_level %d", i, r.MaxLevel, r.MinLevel)
		}
		if r.MaxPower < r.MinPower {
			return engerr.Validationf("scaling region %d: max_power %v < min_power %v", i, r.MaxPower, r.MinPower)
		}
		if i == 0 {
			continue
		}
		prev := c.Regions[i-1]
		if r.MinLevel <= prev.MinLevel {
			return engerr.Validationf("scaling region %d: regions must be ordered by min_level", i)
		}
		if r.MinLevel >= prev.MaxLevel {
			return engerr.Validationf("scaling region %d: gap after level %d", i, prev.MaxLevel)
		}
		if r.MinPower < prev.MinPower || r.MaxPower < prev.MaxPower {
			return engerr.Validationf("scaling region %d: power band steps backwards", i)
		}
		if i >= 2 && c.Regions[i-2].MaxLevel > r.MinLevel {
			return engerr.Validationf("scaling region %d: more than two regions overlap", i)
		}
	}

	first := c.Regions[0]
	last := c.Regions[len(c.Regions)-1]
	if first.MinLevel > 1 {
		return engerr.Validation("scaling regions must cover level 1")
	}
	if last.MaxLevel < c.MaxItemLevel {
		return engerr.Validationf("scaling regions must cover max_item_level %d", c.MaxItemLevel)
	}
	return nil
}
