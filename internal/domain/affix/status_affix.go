package affix

import (
	"github.com/grimveil/dicebound/internal/dice"
)

// DurationType says what a status counts down in
type DurationType string

const (
	DurationTurns  DurationType = "turns"
	DurationStacks DurationType = "stacks"
)

// DecayStyle says how repeated applications interact
type DecayStyle string

const (
	// DecayRefresh: a new application resets the shared duration
	DecayRefresh DecayStyle = "refresh"
	// DecayRollingBatch: each application expires on its own schedule
	DecayRollingBatch DecayStyle = "rolling_batch"
)

// TickTiming is the turn phase at which a status ticks
type TickTiming string

const (
	TickTurnStart TickTiming = "turn_start"
	TickTurnEnd   TickTiming = "turn_end"
)

// StatusAffix is an authored status-effect template. One template exists
// per status id; instances live in the status ledger per target.
type StatusAffix struct {
	StatusID     string       `json:"status_id" yaml:"status_id"`
	Name         string       `json:"name" yaml:"name"`
	DurationType DurationType `json:"duration_type" yaml:"duration_type"`
	BaseDuration int          `json:"base_duration" yaml:"base_duration"`
	MaxStacks    int          `json:"max_stacks" yaml:"max_stacks"`
	DecayStyle   DecayStyle   `json:"decay_style" yaml:"decay_style"`
	TickTiming   TickTiming   `json:"tick_timing" yaml:"tick_timing"`

	// DamagePerStack is dealt on each tick; negative values heal.
	DamagePerStack float64      `json:"damage_per_stack" yaml:"damage_per_stack"`
	Element        dice.Element `json:"element,omitempty" yaml:"element,omitempty"`

	// StackThreshold > 0 makes the status explode when the stack count
	// reaches it, consuming all stacks.
	StackThreshold        int     `json:"stack_threshold" yaml:"stack_threshold"`
	ExplodeDamagePerStack float64 `json:"explode_damage_per_stack" yaml:"explode_damage_per_stack"`

	Debuff      bool     `json:"debuff" yaml:"debuff"`
	CleanseTags []string `json:"cleanse_tags" yaml:"cleanse_tags"`

	// Per-stack stat modifier while the status is active
	ModifierStat     string  `json:"modifier_stat,omitempty" yaml:"modifier_stat,omitempty"`
	ModifierPerStack float64 `json:"modifier_per_stack,omitempty" yaml:"modifier_per_stack,omitempty"`
}

// HasCleanseTag checks whether the template answers to the given cleanse tag
func (s *StatusAffix) HasCleanseTag(tag string) bool {
	for _, t := range s.CleanseTags {
		if t == tag {
			return true
		}
	}
	return false
}
