package affix

import (
	"github.com/grimveil/dicebound/internal/dice"
)

// Trigger is a named event point at which a conditional effect may fire
type Trigger string

const (
	TriggerRoll        Trigger = "ON_ROLL"
	TriggerUse         Trigger = "ON_USE"
	TriggerCombatStart Trigger = "ON_COMBAT_START"
	TriggerCombatEnd   Trigger = "ON_COMBAT_END"
	TriggerTurnStart   Trigger = "ON_TURN_START"
	TriggerTurnEnd     Trigger = "ON_TURN_END"
	TriggerPassive     Trigger = "PASSIVE"
	TriggerKill        Trigger = "ON_KILL"
	TriggerManaPull    Trigger = "ON_MANA_PULL"
	TriggerDieUsed     Trigger = "ON_DIE_USED"
	TriggerActionUsed  Trigger = "ON_ACTION_USED"
	TriggerDefend      Trigger = "ON_DEFEND"
	TriggerDealDamage  Trigger = "ON_DEAL_DAMAGE"
	TriggerTakeDamage  Trigger = "ON_TAKE_DAMAGE"
)

// Triggers lists every trigger point, used for template validation
var Triggers = []Trigger{
	TriggerRoll, TriggerUse, TriggerCombatStart, TriggerCombatEnd,
	TriggerTurnStart, TriggerTurnEnd, TriggerPassive, TriggerKill,
	TriggerManaPull, TriggerDieUsed, TriggerActionUsed, TriggerDefend,
	TriggerDealDamage, TriggerTakeDamage,
}

// EffectType tags what an effect does when it fires
type EffectType string

const (
	EffectModifyValueFlat    EffectType = "MODIFY_VALUE_FLAT"
	EffectModifyValuePercent EffectType = "MODIFY_VALUE_PERCENT"
	EffectSetMinimumValue    EffectType = "SET_MINIMUM_VALUE"
	EffectAutoRerollLow      EffectType = "AUTO_REROLL_LOW"
	EffectGrantReroll        EffectType = "GRANT_REROLL"
	EffectRollKeepHighest    EffectType = "ROLL_KEEP_HIGHEST"
	EffectCopyNeighborValue  EffectType = "COPY_NEIGHBOR_VALUE"
	EffectEmitBonusDamage    EffectType = "EMIT_BONUS_DAMAGE"
	EffectEmitSplashDamage   EffectType = "EMIT_SPLASH_DAMAGE"
	EffectEmitChainDamage    EffectType = "EMIT_CHAIN_DAMAGE"
	EffectGrantStatusEffect  EffectType = "GRANT_STATUS_EFFECT"
	EffectAddStatus          EffectType = "ADD_STATUS"
	EffectRemoveStatus       EffectType = "REMOVE_STATUS"
	EffectIgnoreResistance   EffectType = "IGNORE_RESISTANCE"
	EffectManaGain           EffectType = "MANA_GAIN"
	EffectManaRefund         EffectType = "MANA_REFUND"
	EffectManaManipulate     EffectType = "MANA_MANIPULATE"
	EffectDuplicateOnMax     EffectType = "DUPLICATE_ON_MAX"
	EffectLockDie            EffectType = "LOCK_DIE"
	EffectDestroySelf        EffectType = "DESTROY_SELF"
	EffectChangeDieType      EffectType = "CHANGE_DIE_TYPE"
)

// TargetScope resolves which dice or combatants an effect touches,
// relative to the die that fired it
type TargetScope string

const (
	TargetSelf          TargetScope = "self"
	TargetLeft          TargetScope = "left"
	TargetRight         TargetScope = "right"
	TargetBothNeighbors TargetScope = "both_neighbors"
	TargetAllOthers     TargetScope = "all_others"
)

// PositionRequirement restricts which pool slots an effect may fire from
type PositionRequirement string

const (
	PositionAny      PositionRequirement = "any"
	PositionFirst    PositionRequirement = "first"
	PositionLast     PositionRequirement = "last"
	PositionNotFirst PositionRequirement = "not_first"
	PositionNotLast  PositionRequirement = "not_last"
	PositionEvenSlot PositionRequirement = "even_slot"
	PositionOddSlot  PositionRequirement = "odd_slot"
)

// Allows checks the requirement against a slot index in a pool of the
// given size. Slots count from 0; even/odd reads the 1-based slot number.
func (p PositionRequirement) Allows(index, poolSize int) bool {
	switch p {
	case PositionAny, "":
		return true
	case PositionFirst:
		return index == 0
	case PositionLast:
		return index == poolSize-1
	case PositionNotFirst:
		return index != 0
	case PositionNotLast:
		return index != poolSize-1
	case PositionEvenSlot:
		return (index+1)%2 == 0
	case PositionOddSlot:
		return (index+1)%2 == 1
	default:
		return false
	}
}

// ValueSource says where an effect reads its working value from
type ValueSource string

const (
	SourceStatic            ValueSource = "static"
	SourceNeighborPercent   ValueSource = "neighbor_percent"
	SourceTargetStatusStack ValueSource = "target_status_stacks"
	SourceDiceTotal         ValueSource = "dice_total"
	SourceSelfTags          ValueSource = "self_tags"
)

// DamageMode selects between a flat amount and a percentage. It is always
// explicit in authored content; a missing mode fails validation rather
// than silently reading as zero.
type DamageMode string

const (
	ModeFlat    DamageMode = "flat"
	ModePercent DamageMode = "percent"
)

// DamageParams parameterizes the EMIT_*_DAMAGE family
type DamageParams struct {
	Mode    DamageMode   `json:"mode" yaml:"mode"`
	Element dice.Element `json:"element,omitempty" yaml:"element,omitempty"`
	Bounces int          `json:"bounces,omitempty" yaml:"bounces,omitempty"`
	Decay   float64      `json:"decay,omitempty" yaml:"decay,omitempty"`
}

// StatusParams parameterizes the status grant/add/remove family
type StatusParams struct {
	StatusID string `json:"status_id" yaml:"status_id"`
	Stacks   int    `json:"stacks" yaml:"stacks"`
}

// RerollParams parameterizes the reroll family
type RerollParams struct {
	Threshold int `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Count     int `json:"count,omitempty" yaml:"count,omitempty"`
}

// ManaParams parameterizes the mana family
type ManaParams struct {
	Mode DamageMode `json:"mode" yaml:"mode"`
}

// DieChangeParams parameterizes CHANGE_DIE_TYPE
type DieChangeParams struct {
	Steps int `json:"steps" yaml:"steps"`
}

// ResistParams parameterizes IGNORE_RESISTANCE
type ResistParams struct {
	Elements []dice.Element `json:"elements" yaml:"elements"`
}

// DiceAffix is an authored conditional effect on an individual die. The
// per-family parameter structs replace the free-form effect_data maps the
// content tooling once used; exactly one of them is set for the types
// that need one, enforced at load time.
type DiceAffix struct {
	ID             string              `json:"id" yaml:"id"`
	Trigger        Trigger             `json:"trigger" yaml:"trigger"`
	EffectType     EffectType          `json:"effect_type" yaml:"effect_type"`
	EffectValue    float64             `json:"effect_value" yaml:"effect_value"`
	EffectValueMin float64             `json:"effect_value_min,omitempty" yaml:"effect_value_min,omitempty"`
	EffectValueMax float64             `json:"effect_value_max,omitempty" yaml:"effect_value_max,omitempty"`
	Target         TargetScope         `json:"target" yaml:"target"`
	Position       PositionRequirement `json:"position_requirement" yaml:"position_requirement"`
	Condition      *Condition          `json:"condition,omitempty" yaml:"condition,omitempty"`
	ValueSource    ValueSource         `json:"value_source" yaml:"value_source"`

	Damage    *DamageParams    `json:"damage,omitempty" yaml:"damage,omitempty"`
	Status    *StatusParams    `json:"status,omitempty" yaml:"status,omitempty"`
	Reroll    *RerollParams    `json:"reroll,omitempty" yaml:"reroll,omitempty"`
	Mana      *ManaParams      `json:"mana,omitempty" yaml:"mana,omitempty"`
	DieChange *DieChangeParams `json:"die_change,omitempty" yaml:"die_change,omitempty"`
	Resist    *ResistParams    `json:"resist,omitempty" yaml:"resist,omitempty"`
}
