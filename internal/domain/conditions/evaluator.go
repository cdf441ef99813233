// Package conditions evaluates authored predicates against a die/target
// context. Evaluation is pure: no side effects, no errors, unknown
// predicate types simply fail.
package conditions

import (
	"github.com/grimveil/dicebound/internal/dice"
	"github.com/grimveil/dicebound/internal/domain/affix"
)

// StatusReader answers status queries without coupling the evaluator to
// the ledger implementation
type StatusReader interface {
	// StacksOf returns the current stack count of a status on a target,
	// 0 when absent
	StacksOf(targetID, statusID string) int
}

// Context is everything a predicate may look at
type Context struct {
	Die           *dice.Die
	Index         int
	Pool          *dice.Pool
	NeighborScope affix.TargetScope
	TargetID      string
	Statuses      StatusReader
}

// Evaluate runs a condition against the context. A nil condition always
// passes; Invert negates the predicate's result.
func Evaluate(c *affix.Condition, ctx *Context) bool {
	if c == nil {
		return true
	}

	result := evaluate(c, ctx)
	if c.Invert {
		return !result
	}
	return result
}

func evaluate(c *affix.Condition, ctx *Context) bool {
	switch c.Type {
	case affix.ConditionSelfValueIsMax:
		return ctx.Die != nil && ctx.Die.IsMaxed()

	case affix.ConditionSelfValueBelow:
		return ctx.Die != nil && ctx.Die.Value < c.Threshold

	case affix.ConditionSelfElementIs:
		return ctx.Die != nil && ctx.Die.Element == c.Element

	case affix.ConditionNeighborHasElement:
		for _, n := range scopedNeighbors(ctx) {
			if n.Element == c.Element {
				return true
			}
		}
		return false

	case affix.ConditionTargetHasStatus:
		if ctx.Statuses == nil {
			return false
		}
		return ctx.Statuses.StacksOf(ctx.TargetID, c.StatusID) > 0

	default:
		return false
	}
}

func scopedNeighbors(ctx *Context) []*dice.Die {
	if ctx.Pool == nil {
		return nil
	}
	switch ctx.NeighborScope {
	case affix.TargetLeft:
		if d := ctx.Pool.Left(ctx.Index); d != nil {
			return []*dice.Die{d}
		}
		return nil
	case affix.TargetRight:
		if d := ctx.Pool.Right(ctx.Index); d != nil {
			return []*dice.Die{d}
		}
		return nil
	case affix.TargetAllOthers:
		return ctx.Pool.Others(ctx.Index)
	default:
		// both_neighbors is the default neighbor scope
		return ctx.Pool.Neighbors(ctx.Index)
	}
}
