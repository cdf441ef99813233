package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimveil/dicebound/internal/dice"
	mockdice "github.com/grimveil/dicebound/internal/dice/mock"
	"github.com/grimveil/dicebound/internal/domain/affix"
)

func TestApplier_SplashDamage(t *testing.T) {
	t.Run("flat mode pays the authored amount", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		// Flat splash for 3 must land as 3, whether or not any percent
		// field was ever authored alongside it.
		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "splash3", Trigger: affix.TriggerUse,
				EffectType: affix.EffectEmitSplashDamage, EffectValue: 3,
				Damage: &affix.DamageParams{Mode: affix.ModeFlat},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))

		assert.Equal(t, 100, session.Enemy("enemy-1").HP, "primary target untouched")
		assert.Equal(t, 97, session.Enemy("enemy-2").HP, "adjacent enemy takes exactly 3")
	})

	t.Run("percent mode reads the triggering die", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		// Die at slot 1 holds 4; 50 percent of it splashes for 2
		session.Slots[1].Affixes = []*affix.DiceAffix{
			{
				ID: "splash_half", Trigger: affix.TriggerUse,
				EffectType: affix.EffectEmitSplashDamage, EffectValue: 50,
				Damage: &affix.DamageParams{Mode: affix.ModePercent},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 1, "enemy-1"))
		assert.Equal(t, 98, session.Enemy("enemy-2").HP)
	})

	t.Run("no adjacent enemy is a no-op", func(t *testing.T) {
		actor := NewCombatant("hero", "Hero", 0, 50, 20)
		lone := NewCombatant("enemy-1", "Ogre", 0, 100, 10)
		session := NewSession(&SessionConfig{
			Actor:   actor,
			Enemies: []*Combatant{lone},
			Slots:   []*Slot{{Die: &dice.Die{Sides: 6, Value: 4}}},
		})
		dispatcher := NewDispatcher(&DispatcherConfig{Session: session})

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "splash3", Trigger: affix.TriggerUse,
				EffectType: affix.EffectEmitSplashDamage, EffectValue: 3,
				Damage: &affix.DamageParams{Mode: affix.ModeFlat},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 100, lone.HP)
	})
}

func TestApplier_ChainDamage(t *testing.T) {
	actor := NewCombatant("hero", "Hero", 0, 50, 20)
	enemies := []*Combatant{
		NewCombatant("enemy-1", "Rat", 0, 100, 10),
		NewCombatant("enemy-2", "Bat", 1, 100, 10),
		NewCombatant("enemy-3", "Wolf", 2, 100, 10),
	}
	session := NewSession(&SessionConfig{
		Actor:   actor,
		Enemies: enemies,
		Slots:   []*Slot{{Die: &dice.Die{Sides: 8, Value: 6}}},
	})
	dispatcher := NewDispatcher(&DispatcherConfig{Session: session})

	session.Slots[0].Affixes = []*affix.DiceAffix{
		{
			ID: "chain", Trigger: affix.TriggerUse,
			EffectType: affix.EffectEmitChainDamage, EffectValue: 8,
			Damage: &affix.DamageParams{Mode: affix.ModeFlat, Bounces: 2, Decay: 0.5},
		},
	}

	dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))

	assert.Equal(t, 100, enemies[0].HP, "primary target is skipped by bounces")
	assert.Equal(t, 96, enemies[1].HP, "first bounce decays to 4")
	assert.Equal(t, 98, enemies[2].HP, "second bounce decays to 2")
}

func TestApplier_CopyNeighborReadsEventStartValue(t *testing.T) {
	session, dispatcher := newTestSetup(t, 0)

	// Slot 0 buffs itself before slot 1 copies it; the copy must still see
	// the value as of event start.
	session.Slots[0].Affixes = []*affix.DiceAffix{
		{ID: "buff", Trigger: affix.TriggerRoll, EffectType: affix.EffectModifyValueFlat, EffectValue: 5},
	}
	session.Slots[1].Affixes = []*affix.DiceAffix{
		{ID: "copy", Trigger: affix.TriggerRoll, EffectType: affix.EffectCopyNeighborValue, Target: affix.TargetLeft},
	}

	dispatcher.Dispatch(NewEvent(affix.TriggerRoll, -1, "enemy-1"))

	assert.Equal(t, 8, session.Slots[0].Die.Value)
	assert.Equal(t, 3, session.Slots[1].Die.Value, "copied the pre-buff value")
}

func TestApplier_SetMinimumOnlyRaises(t *testing.T) {
	session, dispatcher := newTestSetup(t, 0)

	session.Slots[0].Affixes = []*affix.DiceAffix{
		{ID: "floor4", Trigger: affix.TriggerRoll, EffectType: affix.EffectSetMinimumValue, EffectValue: 4},
	}
	session.Slots[2].Affixes = []*affix.DiceAffix{
		{ID: "floor4b", Trigger: affix.TriggerRoll, EffectType: affix.EffectSetMinimumValue, EffectValue: 4},
	}

	dispatcher.Dispatch(NewEvent(affix.TriggerRoll, -1, "enemy-1"))

	assert.Equal(t, 4, session.Slots[0].Die.Value, "3 raised to the floor")
	assert.Equal(t, 5, session.Slots[2].Die.Value, "5 never lowered")
}

func TestApplier_IgnoreResistance(t *testing.T) {
	t.Run("resistance halves damage by default", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Enemies[0].Resistances[dice.ElementFlame] = 0.5

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "flame_bolt", Trigger: affix.TriggerUse,
				EffectType: affix.EffectEmitBonusDamage, EffectValue: 10,
				Damage: &affix.DamageParams{Mode: affix.ModeFlat, Element: dice.ElementFlame},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 95, session.Enemy("enemy-1").HP)
	})

	t.Run("an earlier ignore effect bypasses it for the event", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Enemies[0].Resistances[dice.ElementFlame] = 0.5

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "pierce", Trigger: affix.TriggerUse,
				EffectType: affix.EffectIgnoreResistance,
				Resist:     &affix.ResistParams{Elements: []dice.Element{dice.ElementFlame}},
			},
			{
				ID: "flame_bolt", Trigger: affix.TriggerUse,
				EffectType: affix.EffectEmitBonusDamage, EffectValue: 10,
				Damage: &affix.DamageParams{Mode: affix.ModeFlat, Element: dice.ElementFlame},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 90, session.Enemy("enemy-1").HP)
	})
}

func TestApplier_ManaEffects(t *testing.T) {
	t.Run("gain percent of max", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Actor.Mana = 0

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "surge", Trigger: affix.TriggerUse,
				EffectType: affix.EffectManaGain, EffectValue: 25,
				Mana: &affix.ManaParams{Mode: affix.ModePercent},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 5, session.Actor.Mana, "25 percent of 20 max")
	})

	t.Run("refund percent of last action cost", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Actor.Mana = 0
		session.Actor.LastActionCost = 8

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "rebate", Trigger: affix.TriggerUse,
				EffectType: affix.EffectManaRefund, EffectValue: 50,
				Mana: &affix.ManaParams{Mode: affix.ModePercent},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 4, session.Actor.Mana)
	})

	t.Run("manipulate drains the event target", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Enemies[0].Mana = 10

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "siphon", Trigger: affix.TriggerUse,
				EffectType: affix.EffectManaManipulate, EffectValue: -4,
				Mana: &affix.ManaParams{Mode: affix.ModeFlat},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 6, session.Enemy("enemy-1").Mana)
	})

	t.Run("mana is clamped to the combatant's range", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Actor.Mana = 19

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "surge", Trigger: affix.TriggerUse,
				EffectType: affix.EffectManaGain, EffectValue: 100,
				Mana: &affix.ManaParams{Mode: affix.ModeFlat},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 20, session.Actor.Mana)
	})
}

func TestApplier_ValueSources(t *testing.T) {
	t.Run("dice total percent", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		// Pool totals 12 at event start; 50 percent of it lands as +6
		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "momentum", Trigger: affix.TriggerRoll,
				EffectType: affix.EffectModifyValueFlat, EffectValue: 50,
				ValueSource: affix.SourceDiceTotal,
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))
		assert.Equal(t, 9, session.Slots[0].Die.Value)
	})

	t.Run("neighbor percent", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		// Right neighbor holds 5; half of it lands as +3 after rounding
		session.Slots[1].Affixes = []*affix.DiceAffix{
			{
				ID: "leech", Trigger: affix.TriggerRoll,
				EffectType: affix.EffectModifyValueFlat, EffectValue: 50,
				ValueSource: affix.SourceNeighborPercent, Target: affix.TargetRight,
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 1, "enemy-1"))
		assert.Equal(t, 7, session.Slots[1].Die.Value)

		// The read side is only a source; the neighbor itself is untouched
		assert.Equal(t, 5, session.Slots[2].Die.Value)
	})

	t.Run("target status stacks", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		require.NoError(t, session.Ledger.Apply("enemy-1", "poison", 3))

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "opportunist", Trigger: affix.TriggerRoll,
				EffectType: affix.EffectModifyValueFlat, EffectValue: 2,
				ValueSource: affix.SourceTargetStatusStack,
				Status:      &affix.StatusParams{StatusID: "poison"},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))
		assert.Equal(t, 9, session.Slots[0].Die.Value, "3 stacks x 2 on top of 3")
	})

	t.Run("self tag count", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{ID: "filler", Trigger: affix.TriggerCombatStart, EffectType: affix.EffectModifyValueFlat, EffectValue: 0},
			{
				ID: "hoarder", Trigger: affix.TriggerRoll,
				EffectType: affix.EffectModifyValueFlat, EffectValue: 3,
				ValueSource: affix.SourceSelfTags,
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))
		assert.Equal(t, 9, session.Slots[0].Die.Value, "2 affixes x 3 on top of 3")
	})
}

func TestApplier_StatusEffects(t *testing.T) {
	t.Run("grant applies to the actor", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "self_poison", Trigger: affix.TriggerUse,
				EffectType: affix.EffectGrantStatusEffect,
				Status:     &affix.StatusParams{StatusID: "poison", Stacks: 2},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 2, session.Ledger.StacksOf("hero", "poison"))
		assert.Equal(t, 0, session.Ledger.StacksOf("enemy-1", "poison"))
	})

	t.Run("add applies to the event target with a one stack floor", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "taint", Trigger: affix.TriggerUse,
				EffectType: affix.EffectAddStatus,
				Status:     &affix.StatusParams{StatusID: "poison"},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 1, session.Ledger.StacksOf("enemy-1", "poison"))
	})

	t.Run("remove with zero stacks clears the status", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		require.NoError(t, session.Ledger.Apply("enemy-1", "poison", 4))

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "purge", Trigger: affix.TriggerUse,
				EffectType: affix.EffectRemoveStatus,
				Status:     &affix.StatusParams{StatusID: "poison"},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 0, session.Ledger.StacksOf("enemy-1", "poison"))
	})
}

func TestApplier_DiceManipulation(t *testing.T) {
	t.Run("duplicate on max copies the die in place", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Slots[0].Die.Value = 6

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{ID: "mitosis", Trigger: affix.TriggerRoll, EffectType: affix.EffectDuplicateOnMax},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))

		require.Len(t, session.Slots, 4)
		assert.Equal(t, 6, session.Slots[1].Die.Value)
		assert.Equal(t, 6, session.Slots[1].Die.Sides)
		assert.NotSame(t, session.Slots[0].Die, session.Slots[1].Die)
	})

	t.Run("duplicate on max is a no-op below max", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{ID: "mitosis", Trigger: affix.TriggerRoll, EffectType: affix.EffectDuplicateOnMax},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))
		assert.Len(t, session.Slots, 3)
	})

	t.Run("destroy self removes the slot and skips its later effects", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{ID: "burnout", Trigger: affix.TriggerUse, EffectType: affix.EffectDestroySelf},
			{ID: "after", Trigger: affix.TriggerUse, EffectType: affix.EffectModifyValueFlat, EffectValue: 100},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))

		require.Len(t, session.Slots, 2)
		assert.Equal(t, 4, session.Slots[0].Die.Value, "surviving dice untouched")
		assert.Equal(t, 5, session.Slots[1].Die.Value)
	})

	t.Run("locked dice refuse rerolls", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{6})
		session.Roller = roller

		session.Slots[0].Die.Value = 1
		session.Slots[0].Affixes = []*affix.DiceAffix{
			{ID: "brand", Trigger: affix.TriggerRoll, EffectType: affix.EffectLockDie},
			{
				ID: "reroll_low", Trigger: affix.TriggerRoll,
				EffectType: affix.EffectAutoRerollLow,
				Reroll:     &affix.RerollParams{Threshold: 3},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))
		assert.Equal(t, 1, session.Slots[0].Die.Value)
		assert.True(t, session.Slots[0].Die.Locked)
	})

	t.Run("roll keep highest keeps the better result", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{2, 6})
		session.Roller = roller

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "advantage", Trigger: affix.TriggerRoll,
				EffectType: affix.EffectRollKeepHighest,
				Reroll:     &affix.RerollParams{Count: 1},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))
		assert.Equal(t, 6, session.Slots[0].Die.Value)
	})

	t.Run("grant reroll adds charges", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "stockpile", Trigger: affix.TriggerCombatStart,
				EffectType: affix.EffectGrantReroll,
				Reroll:     &affix.RerollParams{Count: 2},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerCombatStart, 0, "enemy-1"))
		assert.Equal(t, 2, session.Actor.RerollCharges)
	})
}

func TestApplier_ChangeDieType(t *testing.T) {
	t.Run("steps along the ladder and clamps the value", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Slots[0].Die.Value = 6

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "shrink", Trigger: affix.TriggerUse,
				EffectType: affix.EffectChangeDieType,
				DieChange:  &affix.DieChangeParams{Steps: -1},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 4, session.Slots[0].Die.Sides)
		assert.Equal(t, 4, session.Slots[0].Die.Value, "value clamped to the new faces")
	})

	t.Run("clamps at the top of the ladder", func(t *testing.T) {
		session, dispatcher := newTestSetup(t, 0)
		session.Slots[0].Die.Sides = 12

		session.Slots[0].Affixes = []*affix.DiceAffix{
			{
				ID: "grow", Trigger: affix.TriggerUse,
				EffectType: affix.EffectChangeDieType,
				DieChange:  &affix.DieChangeParams{Steps: 3},
			},
		}

		dispatcher.Dispatch(NewEvent(affix.TriggerUse, 0, "enemy-1"))
		assert.Equal(t, 12, session.Slots[0].Die.Sides)
	})
}

func TestApplier_FlatModifierClampsAtZero(t *testing.T) {
	session, dispatcher := newTestSetup(t, 0)

	session.Slots[0].Affixes = []*affix.DiceAffix{
		{ID: "sap", Trigger: affix.TriggerRoll, EffectType: affix.EffectModifyValueFlat, EffectValue: -10},
	}

	dispatcher.Dispatch(NewEvent(affix.TriggerRoll, 0, "enemy-1"))
	assert.Equal(t, 0, session.Slots[0].Die.Value)
}

func TestApplier_StatusTickHealsOnNegativeDamage(t *testing.T) {
	session, _ := newTestSetup(t, 0)
	applier := NewDispatcher(&DispatcherConfig{Session: session}).Applier()

	session.Actor.HP = 40
	applier.ApplyStatusDamage("hero", -5, dice.ElementNone)
	assert.Equal(t, 45, session.Actor.HP)

	applier.ApplyStatusDamage("enemy-1", 5, dice.ElementNone)
	assert.Equal(t, 95, session.Enemy("enemy-1").HP)
}
