package combat

import (
	"log"

	"github.com/grimveil/dicebound/internal/domain/affix"
	"github.com/grimveil/dicebound/internal/domain/conditions"
)

// DefaultChainDepthCap bounds chained trigger generations per dispatch
const DefaultChainDepthCap = 8

// pending is one collected effect awaiting application. Slots are held by
// pointer because earlier effects in the same event may shift or destroy
// pool positions.
type pending struct {
	slot *Slot
	da   *affix.DiceAffix
}

// Dispatcher routes game events to the conditional effects that match
// them. Resolution order is fixed: pool index order across slots,
// declaration order within a slot. Effects raising further events go
// through a FIFO queue drained after the current effect list, bounded by
// the chain depth cap.
type Dispatcher struct {
	session  *Session
	applier  *Applier
	queue    []*Event
	depthCap int
	draining bool
	current  *Event
}

// DispatcherConfig holds configuration for the dispatcher
type DispatcherConfig struct {
	Session       *Session
	ChainDepthCap int // Defaults to DefaultChainDepthCap
}

// NewDispatcher creates a dispatcher and its effect applier over a session
func NewDispatcher(cfg *DispatcherConfig) *Dispatcher {
	cap := cfg.ChainDepthCap
	if cap <= 0 {
		cap = DefaultChainDepthCap
	}

	d := &Dispatcher{
		session:  cfg.Session,
		depthCap: cap,
	}
	d.applier = newApplier(cfg.Session, d.enqueue)

	if cfg.Session.Ledger != nil {
		cfg.Session.Ledger.SetOnExplode(d.handleExplosion)
	}
	return d
}

// Applier exposes the dispatcher's effect applier, which also serves as
// the ledger's tick damage sink
func (d *Dispatcher) Applier() *Applier {
	return d.applier
}

// Dispatch feeds an event in and drains the queue to quiescence. Nested
// calls from effect application only enqueue; the outermost call drains.
func (d *Dispatcher) Dispatch(ev *Event) {
	d.enqueue(ev)
	d.drain()
}

// drain resolves queued events to quiescence. A no-op while a drain is
// already in progress further up the stack.
func (d *Dispatcher) drain() {
	if d.draining {
		return
	}

	d.draining = true
	defer func() { d.draining = false }()

	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		d.resolve(next)
	}
}

func (d *Dispatcher) enqueue(ev *Event) {
	if ev.Depth > d.depthCap {
		log.Printf("Dispatcher: chain depth cap %d reached, dropping %s event", d.depthCap, ev.Trigger)
		return
	}
	d.queue = append(d.queue, ev)
}

func (d *Dispatcher) resolve(ev *Event) {
	if ev.Trigger == affix.TriggerPassive {
		// Passive affixes are continuous modifiers, never one-shot events
		log.Printf("Dispatcher: ignoring dispatch of passive trigger")
		return
	}

	ev.snapshot = d.session.Pool().Snapshot()
	d.current = ev
	defer func() { d.current = nil }()

	// Collect first: surviving effects are fixed before any of them runs,
	// then applied in the collected order.
	size := len(d.session.Slots)
	var matched []pending
	for i, slot := range d.session.Slots {
		for _, da := range slot.Affixes {
			if da.Trigger != ev.Trigger {
				continue
			}
			if !da.Position.Allows(i, size) {
				continue
			}
			if !conditions.Evaluate(da.Condition, d.session.conditionContext(i, da, ev.TargetID)) {
				continue
			}
			matched = append(matched, pending{slot: slot, da: da})
		}
	}

	for _, p := range matched {
		idx := d.slotIndex(p.slot)
		if idx < 0 {
			// Slot was destroyed by an earlier effect in this event
			continue
		}
		d.applier.Apply(idx, p.da, ev)
	}
}

func (d *Dispatcher) slotIndex(slot *Slot) int {
	for i, s := range d.session.Slots {
		if s == slot {
			return i
		}
	}
	return -1
}

// TurnStart dispatches the turn-start event and ticks every combatant's
// turn-start statuses
func (d *Dispatcher) TurnStart() {
	d.Dispatch(NewEvent(affix.TriggerTurnStart, -1, ""))
	d.tickAll(affix.TickTurnStart)
}

// TurnEnd dispatches the turn-end event and ticks every combatant's
// turn-end statuses
func (d *Dispatcher) TurnEnd() {
	d.Dispatch(NewEvent(affix.TriggerTurnEnd, -1, ""))
	d.tickAll(affix.TickTurnEnd)
}

func (d *Dispatcher) tickAll(timing affix.TickTiming) {
	if d.session.Ledger == nil {
		return
	}
	d.session.Ledger.Tick(d.session.Actor.ID, timing, d.applier)
	for _, e := range d.session.Enemies {
		d.session.Ledger.Tick(e.ID, timing, d.applier)
	}
}

// handleExplosion routes a status threshold explosion back through the
// applier; chained events it raises join the queue under the current
// event's depth budget.
func (d *Dispatcher) handleExplosion(targetID string, tpl *affix.StatusAffix, consumed int) {
	amount := float64(consumed) * tpl.ExplodeDamagePerStack
	if amount == 0 {
		return
	}

	parent := d.current
	if parent == nil {
		parent = NewEvent(affix.TriggerTurnEnd, -1, targetID)
	}
	d.applier.applyDirectDamage(targetID, amount, tpl.Element, parent)

	// An explosion raised outside a dispatch must settle its own chained
	// events instead of parking them for the next unrelated dispatch
	d.drain()
}
