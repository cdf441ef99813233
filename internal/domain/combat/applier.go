package combat

import (
	"log"
	"math"

	"github.com/grimveil/dicebound/internal/dice"
	"github.com/grimveil/dicebound/internal/domain/affix"
)

// Applier interprets effect-type tags against a resolved target scope.
// The effect switch is exhaustive over the closed effect enum; effects
// that find no valid context are silent no-ops, never errors.
type Applier struct {
	session *Session
	enqueue func(*Event)
}

func newApplier(session *Session, enqueue func(*Event)) *Applier {
	return &Applier{session: session, enqueue: enqueue}
}

// Apply runs one effect from the die at slot index idx under the event
func (a *Applier) Apply(idx int, da *affix.DiceAffix, ev *Event) {
	switch da.EffectType {
	case affix.EffectModifyValueFlat:
		a.modifyFlat(idx, da, ev)
	case affix.EffectModifyValuePercent:
		a.modifyPercent(idx, da)
	case affix.EffectSetMinimumValue:
		a.setMinimum(idx, da)
	case affix.EffectAutoRerollLow:
		a.autoRerollLow(idx, da)
	case affix.EffectGrantReroll:
		a.session.Actor.RerollCharges += da.Reroll.Count
	case affix.EffectRollKeepHighest:
		a.rollKeepHighest(idx, da)
	case affix.EffectCopyNeighborValue:
		a.copyNeighborValue(idx, da, ev)
	case affix.EffectEmitBonusDamage:
		a.emitBonusDamage(idx, da, ev)
	case affix.EffectEmitSplashDamage:
		a.emitSplashDamage(idx, da, ev)
	case affix.EffectEmitChainDamage:
		a.emitChainDamage(idx, da, ev)
	case affix.EffectGrantStatusEffect:
		a.applyStatus(a.session.Actor.ID, da)
	case affix.EffectAddStatus:
		a.applyStatus(ev.TargetID, da)
	case affix.EffectRemoveStatus:
		a.removeStatus(ev.TargetID, da)
	case affix.EffectIgnoreResistance:
		for _, el := range da.Resist.Elements {
			ev.IgnoreResistance(el)
		}
	case affix.EffectManaGain:
		a.manaGain(da)
	case affix.EffectManaRefund:
		a.manaRefund(da)
	case affix.EffectManaManipulate:
		a.manaManipulate(da, ev)
	case affix.EffectDuplicateOnMax:
		a.duplicateOnMax(idx)
	case affix.EffectLockDie:
		a.lockDie(idx, da)
	case affix.EffectDestroySelf:
		a.destroySelf(idx)
	case affix.EffectChangeDieType:
		a.changeDieType(idx, da)
	default:
		log.Printf("Applier: unknown effect type %q, skipping", da.EffectType)
	}
}

// scopedDice resolves a die-target scope against the current pool
func (a *Applier) scopedDice(idx int, scope affix.TargetScope) []*dice.Die {
	pool := a.session.Pool()
	switch scope {
	case affix.TargetLeft:
		if d := pool.Left(idx); d != nil {
			return []*dice.Die{d}
		}
		return nil
	case affix.TargetRight:
		if d := pool.Right(idx); d != nil {
			return []*dice.Die{d}
		}
		return nil
	case affix.TargetBothNeighbors:
		return pool.Neighbors(idx)
	case affix.TargetAllOthers:
		return pool.Others(idx)
	default:
		if d := pool.Get(idx); d != nil {
			return []*dice.Die{d}
		}
		return nil
	}
}

// workingValue resolves the effect's input value per its value source.
// Percent-style sources read the authored value as a percentage.
func (a *Applier) workingValue(idx int, da *affix.DiceAffix, ev *Event) float64 {
	switch da.ValueSource {
	case affix.SourceNeighborPercent:
		n := a.neighborIndex(idx, da.Target)
		if n < 0 {
			return 0
		}
		return float64(ev.SnapshotValue(n)) * da.EffectValue / 100

	case affix.SourceTargetStatusStack:
		if a.session.Ledger == nil || da.Status == nil {
			return 0
		}
		return float64(a.session.Ledger.StacksOf(ev.TargetID, da.Status.StatusID)) * da.EffectValue

	case affix.SourceDiceTotal:
		return float64(ev.SnapshotTotal()) * da.EffectValue / 100

	case affix.SourceSelfTags:
		if idx >= 0 && idx < len(a.session.Slots) {
			return float64(len(a.session.Slots[idx].Affixes)) * da.EffectValue
		}
		return 0

	default:
		return da.EffectValue
	}
}

// neighborIndex picks the snapshot index a neighbor-scoped read resolves
// to: the scoped side, or the left neighbor first when both qualify
func (a *Applier) neighborIndex(idx int, scope affix.TargetScope) int {
	size := len(a.session.Slots)
	switch scope {
	case affix.TargetRight:
		if idx+1 < size {
			return idx + 1
		}
		return -1
	case affix.TargetLeft:
		if idx-1 >= 0 {
			return idx - 1
		}
		return -1
	default:
		if idx-1 >= 0 {
			return idx - 1
		}
		if idx+1 < size {
			return idx + 1
		}
		return -1
	}
}

func (a *Applier) modifyFlat(idx int, da *affix.DiceAffix, ev *Event) {
	amount := a.workingValue(idx, da, ev)
	scope := da.Target
	if da.ValueSource == affix.SourceNeighborPercent {
		// A neighbor-sourced value reads from the scoped side; the
		// modifier itself always lands on the triggering die
		scope = affix.TargetSelf
	}
	for _, d := range a.scopedDice(idx, scope) {
		d.Value += int(math.Round(amount))
		if d.Value < 0 {
			d.Value = 0
		}
	}
}

func (a *Applier) modifyPercent(idx int, da *affix.DiceAffix) {
	// Percent mods are pure multiplication on the live value
	for _, d := range a.scopedDice(idx, da.Target) {
		d.Value = int(math.Round(float64(d.Value) * da.EffectValue))
		if d.Value < 0 {
			d.Value = 0
		}
	}
}

func (a *Applier) setMinimum(idx int, da *affix.DiceAffix) {
	floor := int(math.Round(da.EffectValue))
	for _, d := range a.scopedDice(idx, da.Target) {
		if d.Value < floor {
			d.Value = floor
		}
	}
}

func (a *Applier) autoRerollLow(idx int, da *affix.DiceAffix) {
	d := a.session.Pool().Get(idx)
	if d == nil || d.Locked {
		return
	}
	result, err := a.session.Roller.RerollIfBelow(d.Sides, d.Value, da.Reroll.Threshold)
	if err != nil {
		log.Printf("Applier: reroll failed: %v", err)
		return
	}
	d.Value = result.Total
}

func (a *Applier) rollKeepHighest(idx int, da *affix.DiceAffix) {
	d := a.session.Pool().Get(idx)
	if d == nil || d.Locked {
		return
	}
	result, err := a.session.Roller.RollKeepHighest(d.Sides, da.Reroll.Count)
	if err != nil {
		log.Printf("Applier: keep-highest roll failed: %v", err)
		return
	}
	if result.Total > d.Value {
		d.Value = result.Total
	}
}

func (a *Applier) copyNeighborValue(idx int, da *affix.DiceAffix, ev *Event) {
	n := a.neighborIndex(idx, da.Target)
	if n < 0 {
		return
	}
	d := a.session.Pool().Get(idx)
	if d == nil {
		return
	}

	// Reads the neighbor's value as of event start, never post-mutation
	source := float64(ev.SnapshotValue(n))
	if da.ValueSource == affix.SourceNeighborPercent {
		source = source * da.EffectValue / 100
	}
	d.Value = int(math.Round(source))
	if d.Value < 0 {
		d.Value = 0
	}
}

// damageAmount computes a damage effect's base amount from its explicit
// mode. Percent mode reads a percentage of the triggering die's
// event-start value.
func (a *Applier) damageAmount(idx int, da *affix.DiceAffix, ev *Event) float64 {
	if da.Damage.Mode == affix.ModePercent {
		return float64(ev.SnapshotValue(idx)) * da.EffectValue / 100
	}
	return a.workingValue(idx, da, ev)
}

func (a *Applier) emitBonusDamage(idx int, da *affix.DiceAffix, ev *Event) {
	target := a.session.Enemy(ev.TargetID)
	if target == nil || !target.Alive {
		return
	}
	a.dealDamage(target, a.damageAmount(idx, da, ev), da.Damage.Element, ev)
}

func (a *Applier) emitSplashDamage(idx int, da *affix.DiceAffix, ev *Event) {
	target := a.session.Enemy(ev.TargetID)
	if target == nil {
		return
	}
	splash := a.session.AdjacentEnemy(target)
	if splash == nil {
		// No adjacent enemy to splash onto
		return
	}
	a.dealDamage(splash, a.damageAmount(idx, da, ev), da.Damage.Element, ev)
}

func (a *Applier) emitChainDamage(idx int, da *affix.DiceAffix, ev *Event) {
	primary := a.session.Enemy(ev.TargetID)
	amount := a.damageAmount(idx, da, ev)

	bounced := 0
	for _, e := range a.session.AliveEnemies() {
		if bounced >= da.Damage.Bounces {
			break
		}
		if primary != nil && e == primary {
			continue
		}
		amount *= da.Damage.Decay
		rounded := int(math.Round(amount))
		if rounded <= 0 {
			break
		}
		a.dealDamage(e, amount, da.Damage.Element, ev)
		bounced++
	}
}

// dealDamage applies damage to a target, honoring resistances unless the
// event bypasses them, and raises the follow-up events
func (a *Applier) dealDamage(target *Combatant, amount float64, element dice.Element, ev *Event) {
	if !ev.ResistanceIgnored(element) {
		amount *= 1 - target.Resistance(element)
	}

	final := int(math.Round(amount))
	if final <= 0 {
		return
	}

	killed := target.TakeDamage(final)
	log.Printf("Applier: %s takes %d %s damage (%d hp left)", target.Name, final, element, target.HP)

	a.enqueue(ev.child(affix.TriggerDealDamage, ev.SourceIndex, target.ID, float64(final)))
	a.enqueue(ev.child(affix.TriggerTakeDamage, ev.SourceIndex, target.ID, float64(final)))
	if killed {
		a.enqueue(ev.child(affix.TriggerKill, ev.SourceIndex, target.ID, 0))
	}
}

// applyDirectDamage resolves damage not tied to a die effect, such as a
// status explosion
func (a *Applier) applyDirectDamage(targetID string, amount float64, element dice.Element, ev *Event) {
	target := a.session.Enemy(targetID)
	if target == nil || !target.Alive {
		return
	}
	a.dealDamage(target, amount, element, ev)
}

// ApplyStatusDamage implements the ledger's tick damage sink. Negative
// amounts heal. Tick damage bypasses resistances and raises no events.
func (a *Applier) ApplyStatusDamage(targetID string, amount float64, _ dice.Element) {
	target := a.session.Enemy(targetID)
	if target == nil && a.session.Actor.ID == targetID {
		target = a.session.Actor
	}
	if target == nil {
		return
	}

	rounded := int(math.Round(amount))
	if rounded >= 0 {
		target.TakeDamage(rounded)
	} else {
		target.Heal(-rounded)
	}
}

func (a *Applier) applyStatus(targetID string, da *affix.DiceAffix) {
	if a.session.Ledger == nil || targetID == "" {
		return
	}
	stacks := da.Status.Stacks
	if stacks < 1 {
		stacks = 1
	}
	if err := a.session.Ledger.Apply(targetID, da.Status.StatusID, stacks); err != nil {
		log.Printf("Applier: status apply failed: %v", err)
	}
}

func (a *Applier) removeStatus(targetID string, da *affix.DiceAffix) {
	if a.session.Ledger == nil || targetID == "" {
		return
	}
	// Removing 0 stacks is the convention for removing all of them
	a.session.Ledger.Remove(targetID, da.Status.StatusID, da.Status.Stacks)
}

func (a *Applier) manaGain(da *affix.DiceAffix) {
	actor := a.session.Actor
	if da.Mana.Mode == affix.ModePercent {
		actor.AdjustMana(float64(actor.MaxMana) * da.EffectValue / 100)
		return
	}
	actor.AdjustMana(da.EffectValue)
}

func (a *Applier) manaRefund(da *affix.DiceAffix) {
	actor := a.session.Actor
	if da.Mana.Mode == affix.ModePercent {
		actor.AdjustMana(float64(actor.LastActionCost) * da.EffectValue / 100)
		return
	}
	actor.AdjustMana(da.EffectValue)
}

func (a *Applier) manaManipulate(da *affix.DiceAffix, ev *Event) {
	target := a.session.Enemy(ev.TargetID)
	if target == nil {
		return
	}
	if da.Mana.Mode == affix.ModePercent {
		target.AdjustMana(float64(target.MaxMana) * da.EffectValue / 100)
		return
	}
	target.AdjustMana(da.EffectValue)
}

func (a *Applier) duplicateOnMax(idx int) {
	if idx < 0 || idx >= len(a.session.Slots) {
		return
	}
	slot := a.session.Slots[idx]
	if !slot.Die.IsMaxed() {
		return
	}

	copied := *slot.Die
	copied.Locked = false
	// The duplicate references the same affix templates, not copies
	dup := &Slot{Die: &copied, Affixes: slot.Affixes}

	a.session.Slots = append(a.session.Slots[:idx+1],
		append([]*Slot{dup}, a.session.Slots[idx+1:]...)...)
}

func (a *Applier) lockDie(idx int, da *affix.DiceAffix) {
	for _, d := range a.scopedDice(idx, da.Target) {
		d.Locked = true
	}
}

func (a *Applier) destroySelf(idx int) {
	if idx < 0 || idx >= len(a.session.Slots) {
		return
	}
	a.session.Slots = append(a.session.Slots[:idx], a.session.Slots[idx+1:]...)
}

func (a *Applier) changeDieType(idx int, da *affix.DiceAffix) {
	for _, d := range a.scopedDice(idx, da.Target) {
		d.Sides = dice.StepSize(d.Sides, da.DieChange.Steps)
		if d.Value > d.Sides {
			d.Value = d.Sides
		}
	}
}
