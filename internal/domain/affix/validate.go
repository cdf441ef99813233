package affix

import (
	engerr "github.com/grimveil/dicebound/internal/errors"
)

// ValidateAffix checks an affix template at registration time. Malformed
// templates are rejected here so resolution never sees one.
func ValidateAffix(a *Affix) error {
	if a.Name == "" {
		return engerr.Validation("affix template missing name")
	}
	if a.EffectMax < a.EffectMin {
		return engerr.Validationf("affix %q: effect_max %v < effect_min %v", a.Name, a.EffectMax, a.EffectMin).
			WithMeta("affix", a.Name)
	}
	if a.HasScalingRange() && a.EffectNumber != 0 {
		return engerr.Validationf("affix %q: both scaling range and effect_number set", a.Name)
	}
	if a.Tier < 0 {
		return engerr.Validationf("affix %q: negative tier %d", a.Name, a.Tier)
	}
	return nil
}

func validTrigger(t Trigger) bool {
	for _, known := range Triggers {
		if t == known {
			return true
		}
	}
	return false
}

func validCondition(c *Condition) error {
	if c == nil {
		return nil
	}
	switch c.Type {
	case ConditionSelfValueIsMax:
		return nil
	case ConditionSelfValueBelow:
		if c.Threshold < 1 {
			return engerr.Validationf("condition %s requires a positive threshold", c.Type)
		}
		return nil
	case ConditionSelfElementIs, ConditionNeighborHasElement:
		if c.Element == "" {
			return engerr.Validationf("condition %s requires an element", c.Type)
		}
		return nil
	case ConditionTargetHasStatus:
		if c.StatusID == "" {
			return engerr.Validationf("condition %s requires a status_id", c.Type)
		}
		return nil
	default:
		return engerr.Validationf("unknown condition type %q", c.Type)
	}
}

// ValidateDiceAffix checks a dice affix template at registration time.
// Every effect type's required parameter struct must be present and
// complete; the mode on damage and mana effects is never allowed to be
// absent and read as zero.
func ValidateDiceAffix(d *DiceAffix) error {
	if d.ID == "" {
		return engerr.Validation("dice affix template missing id")
	}
	if !validTrigger(d.Trigger) {
		return engerr.Validationf("dice affix %q: unknown trigger %q", d.ID, d.Trigger)
	}
	if d.EffectValueMax < d.EffectValueMin {
		return engerr.Validationf("dice affix %q: effect_value_max %v < effect_value_min %v",
			d.ID, d.EffectValueMax, d.EffectValueMin)
	}
	if err := validCondition(d.Condition); err != nil {
		return engerr.Wrapf(err, "dice affix %q", d.ID)
	}

	switch d.EffectType {
	case EffectModifyValueFlat, EffectModifyValuePercent, EffectSetMinimumValue,
		EffectCopyNeighborValue, EffectDuplicateOnMax, EffectLockDie, EffectDestroySelf:
		return nil

	case EffectAutoRerollLow:
		if d.Reroll == nil || d.Reroll.Threshold < 1 {
			return engerr.Validationf("dice affix %q: %s requires reroll.threshold", d.ID, d.EffectType)
		}
		return nil

	case EffectGrantReroll, EffectRollKeepHighest:
		if d.Reroll == nil || d.Reroll.Count < 1 {
			return engerr.Validationf("dice affix %q: %s requires reroll.count", d.ID, d.EffectType)
		}
		return nil

	case EffectEmitBonusDamage, EffectEmitSplashDamage, EffectEmitChainDamage:
		if d.Damage == nil {
			return engerr.Validationf("dice affix %q: %s requires damage params", d.ID, d.EffectType)
		}
		if d.Damage.Mode != ModeFlat && d.Damage.Mode != ModePercent {
			return engerr.Validationf("dice affix %q: %s requires damage.mode flat or percent, got %q",
				d.ID, d.EffectType, d.Damage.Mode)
		}
		if d.EffectType == EffectEmitChainDamage {
			if d.Damage.Bounces < 1 {
				return engerr.Validationf("dice affix %q: chain damage requires damage.bounces", d.ID)
			}
			if d.Damage.Decay <= 0 || d.Damage.Decay > 1 {
				return engerr.Validationf("dice affix %q: chain damage decay %v outside (0,1]", d.ID, d.Damage.Decay)
			}
		}
		return nil

	case EffectGrantStatusEffect, EffectAddStatus, EffectRemoveStatus:
		if d.Status == nil || d.Status.StatusID == "" {
			return engerr.Validationf("dice affix %q: %s requires status.status_id", d.ID, d.EffectType)
		}
		return nil

	case EffectIgnoreResistance:
		if d.Resist == nil || len(d.Resist.Elements) == 0 {
			return engerr.Validationf("dice affix %q: %s requires resist.elements", d.ID, d.EffectType)
		}
		return nil

	case EffectManaGain, EffectManaRefund, EffectManaManipulate:
		if d.Mana == nil {
			return engerr.Validationf("dice affix %q: %s requires mana params", d.ID, d.EffectType)
		}
		if d.Mana.Mode != ModeFlat && d.Mana.Mode != ModePercent {
			return engerr.Validationf("dice affix %q: %s requires mana.mode flat or percent, got %q",
				d.ID, d.EffectType, d.Mana.Mode)
		}
		return nil

	case EffectChangeDieType:
		if d.DieChange == nil || d.DieChange.Steps == 0 {
			return engerr.Validationf("dice affix %q: %s requires die_change.steps", d.ID, d.EffectType)
		}
		return nil

	default:
		return engerr.Validationf("dice affix %q: unknown effect type %q", d.ID, d.EffectType)
	}
}

// ValidateStatusAffix checks a status template at registration time
func ValidateStatusAffix(s *StatusAffix) error {
	if s.StatusID == "" {
		return engerr.Validation("status template missing status_id")
	}
	if s.MaxStacks < 1 {
		return engerr.Validationf("status %q: max_stacks must be at least 1", s.StatusID)
	}
	if s.DurationType != DurationTurns && s.DurationType != DurationStacks {
		return engerr.Validationf("status %q: unknown duration_type %q", s.StatusID, s.DurationType)
	}
	if s.DecayStyle != DecayRefresh && s.DecayStyle != DecayRollingBatch {
		return engerr.Validationf("status %q: unknown decay_style %q", s.StatusID, s.DecayStyle)
	}
	if s.TickTiming != TickTurnStart && s.TickTiming != TickTurnEnd {
		return engerr.Validationf("status %q: unknown tick_timing %q", s.StatusID, s.TickTiming)
	}
	if s.DurationType == DurationTurns && s.BaseDuration < 1 {
		return engerr.Validationf("status %q: turn-based status requires base_duration", s.StatusID)
	}
	if s.StackThreshold > s.MaxStacks {
		return engerr.Validationf("status %q: stack_threshold %d above max_stacks %d is unreachable",
			s.StatusID, s.StackThreshold, s.MaxStacks)
	}
	return nil
}

// Warning pairs a failed template with its validation error during a bulk
// catalog check
type Warning struct {
	TemplateID string
	Err        error
}

// ValidateCatalog checks every template and aggregates failures instead of
// stopping at the first, so one bad template doesn't hide the rest.
func ValidateCatalog(affixes []*Affix, diceAffixes []*DiceAffix, statuses []*StatusAffix) []Warning {
	var warnings []Warning
	for _, a := range affixes {
		if err := ValidateAffix(a); err != nil {
			warnings = append(warnings, Warning{TemplateID: a.Name, Err: err})
		}
	}
	for _, d := range diceAffixes {
		if err := ValidateDiceAffix(d); err != nil {
			warnings = append(warnings, Warning{TemplateID: d.ID, Err: err})
		}
	}
	for _, s := range statuses {
		if err := ValidateStatusAffix(s); err != nil {
			warnings = append(warnings, Warning{TemplateID: s.StatusID, Err: err})
		}
	}
	return warnings
}
