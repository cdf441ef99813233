// Package status tracks stacking, decaying named effects per combat
// target: the status ledger.
package status

import (
	"log"
	"sort"

	"github.com/grimveil/dicebound/internal/dice"
	"github.com/grimveil/dicebound/internal/domain/affix"
	engerr "github.com/grimveil/dicebound/internal/errors"
)

// batch is one application of a rolling-batch status, expiring on its own
// schedule
type batch struct {
	Stacks    int
	Remaining int
}

// Entry is the ledger's state for one (target, status) pair
type Entry struct {
	StatusID  string
	TargetID  string
	Stacks    int
	Remaining int      // shared duration, refresh style
	batches   []*batch // independent durations, rolling-batch style
}

// DamageSink receives per-stack tick damage. Negative amounts heal.
type DamageSink interface {
	ApplyStatusDamage(targetID string, amount float64, element dice.Element)
}

// ExplodeHandler is invoked when a status crosses its stack threshold.
// The consumed stacks have already been removed from the ledger; the
// handler routes the explosion back through the trigger queue.
type ExplodeHandler func(targetID string, tpl *affix.StatusAffix, consumed int)

// Ledger is the per-combat table of active statuses. It is owned by the
// combat session and only written by the dispatcher and effect applier.
type Ledger struct {
	catalog   map[string]*affix.StatusAffix
	entries   map[string]map[string]*Entry // target -> status -> entry
	onExplode ExplodeHandler
}

// LedgerConfig holds configuration for the ledger
type LedgerConfig struct {
	Catalog   map[string]*affix.StatusAffix
	OnExplode ExplodeHandler // Optional
}

// NewLedger creates a ledger over an immutable status catalog
func NewLedger(cfg *LedgerConfig) *Ledger {
	return &Ledger{
		catalog:   cfg.Catalog,
		entries:   make(map[string]map[string]*Entry),
		onExplode: cfg.OnExplode,
	}
}

// SetOnExplode installs the explode handler. The dispatcher binds itself
// here after construction so explosions re-enter its queue.
func (l *Ledger) SetOnExplode(h ExplodeHandler) {
	l.onExplode = h
}

// Apply creates or augments a status entry, clamped to the template's
// max stacks. Depending on the template's decay style the application
// refreshes the shared duration or adds an independent batch. Crossing
// the stack threshold from below consumes every stack and fires the
// explode handler exactly once.
func (l *Ledger) Apply(targetID, statusID string, stacks int) error {
	tpl, ok := l.catalog[statusID]
	if !ok {
		return engerr.NotFoundf("unknown status %q", statusID)
	}
	if stacks < 1 {
		return engerr.InvalidArgumentf("status %q: cannot apply %d stacks", statusID, stacks)
	}

	byStatus, ok := l.entries[targetID]
	if !ok {
		byStatus = make(map[string]*Entry)
		l.entries[targetID] = byStatus
	}

	entry, ok := byStatus[statusID]
	if !ok {
		entry = &Entry{StatusID: statusID, TargetID: targetID}
		byStatus[statusID] = entry
	}

	before := entry.Stacks
	added := stacks
	if before+added > tpl.MaxStacks {
		added = tpl.MaxStacks - before
	}
	if added < 0 {
		added = 0
	}
	entry.Stacks = before + added

	switch tpl.DecayStyle {
	case affix.DecayRollingBatch:
		if added > 0 {
			entry.batches = append(entry.batches, &batch{Stacks: added, Remaining: tpl.BaseDuration})
		}
	default:
		entry.Remaining = tpl.BaseDuration
	}

	l.checkThreshold(entry, tpl, before)
	return nil
}

// checkThreshold fires the explode transition when the stack count reaches
// the threshold from below
func (l *Ledger) checkThreshold(entry *Entry, tpl *affix.StatusAffix, before int) {
	if tpl.StackThreshold <= 0 {
		return
	}
	if before >= tpl.StackThreshold || entry.Stacks < tpl.StackThreshold {
		return
	}

	consumed := entry.Stacks
	l.removeEntry(entry.TargetID, entry.StatusID)
	log.Printf("StatusLedger: %s exploded on %s consuming %d stacks", entry.StatusID, entry.TargetID, consumed)

	if l.onExplode != nil {
		l.onExplode(entry.TargetID, tpl, consumed)
	}
}

// StacksOf returns the current stack count, 0 when absent. Implements the
// condition evaluator's StatusReader.
func (l *Ledger) StacksOf(targetID, statusID string) int {
	if entry, ok := l.entries[targetID][statusID]; ok {
		return entry.Stacks
	}
	return 0
}

// Has reports whether the target carries the status
func (l *Ledger) Has(targetID, statusID string) bool {
	return l.StacksOf(targetID, statusID) > 0
}

// Active returns the target's entries ordered by status id
func (l *Ledger) Active(targetID string) []*Entry {
	byStatus := l.entries[targetID]
	out := make([]*Entry, 0, len(byStatus))
	for _, e := range byStatus {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StatusID < out[j].StatusID })
	return out
}

// ModifierTotal sums the per-stack stat modifiers active on a target
func (l *Ledger) ModifierTotal(targetID, stat string) float64 {
	total := 0.0
	for _, e := range l.Active(targetID) {
		tpl := l.catalog[e.StatusID]
		if tpl != nil && tpl.ModifierStat == stat {
			total += tpl.ModifierPerStack * float64(e.Stacks)
		}
	}
	return total
}

// Tick applies per-stack damage for every status of the target configured
// at the given timing, then advances durations and expires what ran out.
func (l *Ledger) Tick(targetID string, timing affix.TickTiming, sink DamageSink) {
	for _, entry := range l.Active(targetID) {
		tpl := l.catalog[entry.StatusID]
		if tpl == nil || tpl.TickTiming != timing {
			continue
		}

		if tpl.DamagePerStack != 0 && sink != nil {
			sink.ApplyStatusDamage(targetID, tpl.DamagePerStack*float64(entry.Stacks), tpl.Element)
		}

		l.decay(entry, tpl)
	}
}

func (l *Ledger) decay(entry *Entry, tpl *affix.StatusAffix) {
	if tpl.DurationType == affix.DurationStacks {
		// Stack-based statuses shed one stack per tick
		entry.Stacks--
		if entry.Stacks <= 0 {
			l.removeEntry(entry.TargetID, entry.StatusID)
		}
		return
	}

	if tpl.DecayStyle == affix.DecayRollingBatch {
		kept := entry.batches[:0]
		for _, b := range entry.batches {
			b.Remaining--
			if b.Remaining > 0 {
				kept = append(kept, b)
			} else {
				entry.Stacks -= b.Stacks
			}
		}
		entry.batches = kept
		if entry.Stacks <= 0 {
			l.removeEntry(entry.TargetID, entry.StatusID)
		}
		return
	}

	entry.Remaining--
	if entry.Remaining <= 0 {
		l.removeEntry(entry.TargetID, entry.StatusID)
	}
}

// Remove drops stacks of a status; removing 0 stacks is the convention
// for "remove all".
func (l *Ledger) Remove(targetID, statusID string, stacks int) {
	entry, ok := l.entries[targetID][statusID]
	if !ok {
		return
	}

	if stacks <= 0 || stacks >= entry.Stacks {
		l.removeEntry(targetID, statusID)
		return
	}

	entry.Stacks -= stacks
	if len(entry.batches) > 0 {
		// Shed from the oldest batches first
		remaining := stacks
		kept := entry.batches[:0]
		for _, b := range entry.batches {
			if remaining >= b.Stacks {
				remaining -= b.Stacks
				continue
			}
			b.Stacks -= remaining
			remaining = 0
			kept = append(kept, b)
		}
		entry.batches = kept
	}
}

// Cleanse removes every status on the target whose cleanse tags include
// the given tag
func (l *Ledger) Cleanse(targetID, tag string) int {
	removed := 0
	for _, entry := range l.Active(targetID) {
		tpl := l.catalog[entry.StatusID]
		if tpl != nil && tpl.HasCleanseTag(tag) {
			l.removeEntry(targetID, entry.StatusID)
			removed++
		}
	}
	return removed
}

// Clear drops every entry for a target (end of combat)
func (l *Ledger) Clear(targetID string) {
	delete(l.entries, targetID)
}

func (l *Ledger) removeEntry(targetID, statusID string) {
	byStatus, ok := l.entries[targetID]
	if !ok {
		return
	}
	delete(byStatus, statusID)
	if len(byStatus) == 0 {
		delete(l.entries, targetID)
	}
}
