package affix

import (
	"github.com/grimveil/dicebound/internal/dice"
)

// ConditionType names a predicate family over the die/target context
type ConditionType string

const (
	ConditionSelfValueIsMax     ConditionType = "self_value_is_max"
	ConditionSelfValueBelow     ConditionType = "self_value_below"
	ConditionSelfElementIs      ConditionType = "self_element_is"
	ConditionNeighborHasElement ConditionType = "neighbor_has_element"
	ConditionTargetHasStatus    ConditionType = "target_has_status"
)

// Condition gates whether a dice affix fires. A nil condition always
// passes; Invert negates the predicate's result.
type Condition struct {
	Type      ConditionType `json:"type" yaml:"type"`
	Threshold int           `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Invert    bool          `json:"invert,omitempty" yaml:"invert,omitempty"`
	Element   dice.Element  `json:"element,omitempty" yaml:"element,omitempty"`
	StatusID  string        `json:"status_id,omitempty" yaml:"status_id,omitempty"`
}
