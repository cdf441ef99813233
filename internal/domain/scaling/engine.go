package scaling

import (
	"math"
	"math/rand"
	"time"

	"github.com/grimveil/dicebound/internal/domain/affix"
	engerr "github.com/grimveil/dicebound/internal/errors"
)

// Engine turns authored value ranges plus a level into rolled numbers
type Engine struct {
	cfg *Config
	rng *rand.Rand
}

// EngineConfig holds configuration for the engine
type EngineConfig struct {
	Scaling *Config
	Random  *rand.Rand // Optional - defaults to a time-seeded source
}

// NewEngine creates a scaling engine, validating the curve config up front
func NewEngine(cfg *EngineConfig) (*Engine, error) {
	scalingCfg := cfg.Scaling
	if scalingCfg == nil {
		scalingCfg = DefaultConfig()
	}
	if err := scalingCfg.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.Random
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{cfg: scalingCfg, rng: rng}, nil
}

// PowerPosition maps a level to its normalized [0,1] curve position.
// Levels inside an overlap crossfade between the two regions covering
// them, weighted by progress through the overlap window, which keeps the
// curve continuous and non-decreasing.
func (e *Engine) PowerPosition(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > e.cfg.MaxItemLevel {
		level = e.cfg.MaxItemLevel
	}

	var covering []Region
	for _, r := range e.cfg.Regions {
		if level >= r.MinLevel && level <= r.MaxLevel {
			covering = append(covering, r)
		}
	}

	switch len(covering) {
	case 0:
		// Validated configs have no gaps; clamp defensively anyway.
		if level <= e.cfg.Regions[0].MinLevel {
			return e.cfg.Regions[0].MinPower
		}
		return e.cfg.Regions[len(e.cfg.Regions)-1].MaxPower
	case 1:
		return regionPower(covering[0], level)
	default:
		lo, hi := covering[0], covering[1]
		w := float64(level-hi.MinLevel) / float64(lo.MaxLevel-hi.MinLevel)
		return (1-w)*regionPower(lo, level) + w*regionPower(hi, level)
	}
}

func regionPower(r Region, level int) float64 {
	t := float64(level-r.MinLevel) / float64(r.MaxLevel-r.MinLevel)
	return lerp(r.MinPower, r.MaxPower, t)
}

// FuzzRange computes the sampling window around a scaled center value.
// Half-width is proportional to the fuzz percent with an absolute floor,
// and the window is clamped into the authored [min,max].
func (e *Engine) FuzzRange(center, min, max float64) (float64, float64) {
	half := math.Abs(center) * e.cfg.DefaultFuzzPercent
	if half < e.cfg.MinAbsoluteFuzz {
		half = e.cfg.MinAbsoluteFuzz
	}

	lo, hi := center-half, center+half
	if lo < min {
		lo = min
	}
	if hi > max {
		hi = max
	}
	return lo, hi
}

// RollValue produces the owned value for one affix instance. Static
// templates pass through untouched; ranged templates scale to the power
// position, sample inside the fuzz window and clamp to the authored
// range. Multiplier-tagged affixes keep 2 decimals, all others round to
// whole numbers.
func (e *Engine) RollValue(tpl *affix.Affix, powerPosition float64) (float64, error) {
	if tpl.EffectMax < tpl.EffectMin {
		return 0, engerr.Validationf("affix %q: effect_max %v < effect_min %v",
			tpl.Name, tpl.EffectMax, tpl.EffectMin)
	}

	if !tpl.HasScalingRange() {
		return tpl.EffectNumber, nil
	}

	base := lerp(tpl.EffectMin, tpl.EffectMax, clamp01(powerPosition))
	lo, hi := e.FuzzRange(base, tpl.EffectMin, tpl.EffectMax)

	value := lo
	if hi > lo {
		value = lo + e.rng.Float64()*(hi-lo)
	}

	if tpl.IsMultiplier() {
		value = math.Round(value*100) / 100
	} else {
		value = math.Round(value)
	}

	// Rounding can nudge the value past an authored bound
	if value < tpl.EffectMin {
		value = tpl.EffectMin
	}
	if value > tpl.EffectMax {
		value = tpl.EffectMax
	}
	return value, nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
