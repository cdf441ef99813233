package combat

import (
	"log"
	"math"

	"github.com/grimveil/dicebound/internal/dice"
	"github.com/grimveil/dicebound/internal/domain/affix"
	"github.com/grimveil/dicebound/internal/domain/conditions"
	"github.com/grimveil/dicebound/internal/domain/status"
)

// Slot binds a pooled die to the dice affixes declared on it, in
// declaration order
type Slot struct {
	Die     *dice.Die
	Affixes []*affix.DiceAffix
}

// Session owns the long-lived mutable combat state: the actor's dice
// pool with its slotted affixes, the enemy line, and the status ledger.
// All writes go through the dispatcher and applier.
type Session struct {
	Actor   *Combatant
	Enemies []*Combatant
	Slots   []*Slot
	Ledger  *status.Ledger
	Roller  dice.Roller
}

// SessionConfig holds configuration for a combat session
type SessionConfig struct {
	Actor   *Combatant
	Enemies []*Combatant
	Slots   []*Slot
	Ledger  *status.Ledger
	Roller  dice.Roller
}

// NewSession creates a combat session
func NewSession(cfg *SessionConfig) *Session {
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	return &Session{
		Actor:   cfg.Actor,
		Enemies: cfg.Enemies,
		Slots:   cfg.Slots,
		Ledger:  cfg.Ledger,
		Roller:  roller,
	}
}

// Pool builds the ordered dice pool from the current slots
func (s *Session) Pool() *dice.Pool {
	p := &dice.Pool{Dice: make([]*dice.Die, len(s.Slots))}
	for i, slot := range s.Slots {
		p.Dice[i] = slot.Die
	}
	return p
}

// Enemy returns the combatant with the given id, or nil
func (s *Session) Enemy(id string) *Combatant {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// AliveEnemies returns the living enemies in line order
func (s *Session) AliveEnemies() []*Combatant {
	out := make([]*Combatant, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// AdjacentEnemy returns the nearest living neighbor of the combatant in
// the enemy line, preferring the lower index, or nil
func (s *Session) AdjacentEnemy(of *Combatant) *Combatant {
	var left, right *Combatant
	for _, e := range s.Enemies {
		if !e.Alive || e == of {
			continue
		}
		if e.Index == of.Index-1 {
			left = e
		}
		if e.Index == of.Index+1 {
			right = e
		}
	}
	if left != nil {
		return left
	}
	return right
}

// conditionContext builds the evaluator context for an affix on slot i
// resolving against the event's target
func (s *Session) conditionContext(i int, da *affix.DiceAffix, targetID string) *conditions.Context {
	pool := s.Pool()
	return &conditions.Context{
		Die:           pool.Get(i),
		Index:         i,
		Pool:          pool,
		NeighborScope: da.Target,
		TargetID:      targetID,
		Statuses:      s.Ledger,
	}
}

// PassiveModifierTotal sums the value modifiers of PASSIVE affixes whose
// position and condition currently hold. Percent passives contribute the
// delta they would add to the die they ride on. Passive affixes are
// continuous modifiers, never dispatched as one-shot events.
func (s *Session) PassiveModifierTotal(targetID string) float64 {
	total := 0.0
	size := len(s.Slots)
	pool := s.Pool()
	for i, slot := range s.Slots {
		for _, da := range slot.Affixes {
			if da.Trigger != affix.TriggerPassive {
				continue
			}
			if !da.Position.Allows(i, size) {
				continue
			}
			if !conditions.Evaluate(da.Condition, s.conditionContext(i, da, targetID)) {
				continue
			}
			switch da.EffectType {
			case affix.EffectModifyValueFlat:
				total += da.EffectValue
			case affix.EffectModifyValuePercent:
				if d := pool.Get(i); d != nil {
					total += float64(d.Value) * (da.EffectValue - 1)
				}
			default:
				log.Printf("Session: passive affix %s has unsupported effect type %q, skipping", da.ID, da.EffectType)
			}
		}
	}
	return math.Round(total*100) / 100
}
