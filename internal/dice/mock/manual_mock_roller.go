package mockdice

import (
	"fmt"
	"sync"

	"github.com/grimveil/dicebound/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetRolls sets the predetermined roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// getNextRoll returns the next predetermined roll
func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	total, highest, lowest := 0, 0, 0
	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
		total += roll
		if i == 0 || roll > highest {
			highest = roll
		}
		if i == 0 || roll < lowest {
			lowest = roll
		}
	}

	return &dice.RollResult{
		Total:    total + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: total,
		Highest:  highest,
		Lowest:   lowest,
	}, nil
}

// RollKeepHighest implements dice.Roller
func (m *ManualMockRoller) RollKeepHighest(sides, extra int) (*dice.RollResult, error) {
	result, err := m.Roll(1+extra, sides, 0)
	if err != nil {
		return nil, err
	}

	return &dice.RollResult{
		Total:    result.Highest,
		Rolls:    result.Rolls,
		Count:    result.Count,
		Sides:    sides,
		RawTotal: result.Highest,
		Highest:  result.Highest,
		Lowest:   result.Lowest,
	}, nil
}

// RerollIfBelow implements dice.Roller
func (m *ManualMockRoller) RerollIfBelow(sides, current, threshold int) (*dice.RollResult, error) {
	if current >= threshold {
		return &dice.RollResult{
			Total:    current,
			Rolls:    []int{current},
			Count:    1,
			Sides:    sides,
			RawTotal: current,
			Highest:  current,
			Lowest:   current,
		}, nil
	}
	return m.Roll(1, sides, 0)
}
