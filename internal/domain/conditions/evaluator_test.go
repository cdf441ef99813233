package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grimveil/dicebound/internal/dice"
	"github.com/grimveil/dicebound/internal/domain/affix"
)

type stubStatuses map[string]int

func (s stubStatuses) StacksOf(_, statusID string) int {
	return s[statusID]
}

func testContext() *Context {
	pool := dice.NewPool(
		&dice.Die{Sides: 6, Value: 3, Element: dice.ElementFlame},
		&dice.Die{Sides: 6, Value: 6, Element: dice.ElementStorm},
		&dice.Die{Sides: 8, Value: 2, Element: dice.ElementFrost},
	)
	return &Context{
		Die:      pool.Get(1),
		Index:    1,
		Pool:     pool,
		TargetID: "enemy-1",
		Statuses: stubStatuses{"poison": 2},
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("nil condition always passes", func(t *testing.T) {
		assert.True(t, Evaluate(nil, testContext()))
	})

	t.Run("self value is max", func(t *testing.T) {
		cond := &affix.Condition{Type: affix.ConditionSelfValueIsMax}
		assert.True(t, Evaluate(cond, testContext()))

		ctx := testContext()
		ctx.Die.Value = 5
		assert.False(t, Evaluate(cond, ctx))
	})

	t.Run("self value below threshold", func(t *testing.T) {
		ctx := testContext()
		assert.False(t, Evaluate(&affix.Condition{Type: affix.ConditionSelfValueBelow, Threshold: 6}, ctx))
		assert.True(t, Evaluate(&affix.Condition{Type: affix.ConditionSelfValueBelow, Threshold: 7}, ctx))
	})

	t.Run("self element is", func(t *testing.T) {
		ctx := testContext()
		assert.True(t, Evaluate(&affix.Condition{Type: affix.ConditionSelfElementIs, Element: dice.ElementStorm}, ctx))
		assert.False(t, Evaluate(&affix.Condition{Type: affix.ConditionSelfElementIs, Element: dice.ElementFlame}, ctx))
	})

	t.Run("neighbor has element respects scope", func(t *testing.T) {
		cond := &affix.Condition{Type: affix.ConditionNeighborHasElement, Element: dice.ElementFlame}

		ctx := testContext()
		assert.True(t, Evaluate(cond, ctx), "both neighbors by default")

		ctx.NeighborScope = affix.TargetLeft
		assert.True(t, Evaluate(cond, ctx))

		ctx.NeighborScope = affix.TargetRight
		assert.False(t, Evaluate(cond, ctx), "right neighbor is frost")
	})

	t.Run("target has status", func(t *testing.T) {
		ctx := testContext()
		assert.True(t, Evaluate(&affix.Condition{Type: affix.ConditionTargetHasStatus, StatusID: "poison"}, ctx))
		assert.False(t, Evaluate(&affix.Condition{Type: affix.ConditionTargetHasStatus, StatusID: "burn"}, ctx))
	})

	t.Run("invert negates the result", func(t *testing.T) {
		ctx := testContext()
		cond := &affix.Condition{Type: affix.ConditionSelfValueIsMax, Invert: true}
		assert.False(t, Evaluate(cond, ctx))

		ctx.Die.Value = 2
		assert.True(t, Evaluate(cond, ctx))
	})

	t.Run("unknown predicate fails closed", func(t *testing.T) {
		assert.False(t, Evaluate(&affix.Condition{Type: "phase_of_moon"}, testContext()))
	})

	t.Run("edge dice see only their existing neighbor", func(t *testing.T) {
		cond := &affix.Condition{Type: affix.ConditionNeighborHasElement, Element: dice.ElementStorm}
		ctx := testContext()
		ctx.Die = ctx.Pool.Get(0)
		ctx.Index = 0
		assert.True(t, Evaluate(cond, ctx))

		ctx.NeighborScope = affix.TargetLeft
		assert.False(t, Evaluate(cond, ctx), "no left neighbor at index 0")
	})
}
