package combat

import (
	"github.com/grimveil/dicebound/internal/dice"
	"github.com/grimveil/dicebound/internal/domain/affix"
)

// Event is one pass through the trigger dispatcher. Secondary events
// raised while applying effects inherit Depth+1 and join the FIFO queue.
type Event struct {
	Trigger affix.Trigger

	// SourceIndex is the pool slot that raised the event, -1 for events
	// not tied to a die (turn boundaries, kills).
	SourceIndex int

	// TargetID is the combatant the event resolves against
	TargetID string

	// Amount carries the damage for DEAL_DAMAGE / TAKE_DAMAGE events
	Amount float64

	// Depth counts chained generations for the re-entrancy cap
	Depth int

	// snapshot holds every pool die's value as of event start. Neighbor
	// reads go through it so same-event mutations don't compound.
	snapshot []int

	// ignoreResist flags elements whose resistance lookup is bypassed
	// for damage computed during this event
	ignoreResist map[dice.Element]bool
}

// NewEvent creates a top-level event (depth 0)
func NewEvent(trigger affix.Trigger, sourceIndex int, targetID string) *Event {
	return &Event{
		Trigger:     trigger,
		SourceIndex: sourceIndex,
		TargetID:    targetID,
	}
}

// child derives a secondary event one generation deeper
func (e *Event) child(trigger affix.Trigger, sourceIndex int, targetID string, amount float64) *Event {
	return &Event{
		Trigger:     trigger,
		SourceIndex: sourceIndex,
		TargetID:    targetID,
		Amount:      amount,
		Depth:       e.Depth + 1,
	}
}

// SnapshotValue returns the event-start value of the die at index i, or
// 0 when the snapshot doesn't cover it
func (e *Event) SnapshotValue(i int) int {
	if i < 0 || i >= len(e.snapshot) {
		return 0
	}
	return e.snapshot[i]
}

// SnapshotTotal sums the event-start pool values
func (e *Event) SnapshotTotal() int {
	total := 0
	for _, v := range e.snapshot {
		total += v
	}
	return total
}

// IgnoreResistance marks an element's resistance as bypassed for the
// rest of this event
func (e *Event) IgnoreResistance(element dice.Element) {
	if e.ignoreResist == nil {
		e.ignoreResist = make(map[dice.Element]bool)
	}
	e.ignoreResist[element] = true
}

// ResistanceIgnored reports whether the element's resistance is bypassed
func (e *Event) ResistanceIgnored(element dice.Element) bool {
	return e.ignoreResist[element]
}
