package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller using math/rand
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// NewSeededRoller creates a roller with a fixed seed for reproducible runs
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) intn(n int) int {
	if r.rng != nil {
		return r.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	total, highest, lowest := 0, 0, 0
	for i := 0; i < count; i++ {
		roll := r.intn(sides) + 1
		rolls[i] = roll
		total += roll
		if i == 0 || roll > highest {
			highest = roll
		}
		if i == 0 || roll < lowest {
			lowest = roll
		}
	}

	return &RollResult{
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

// RollKeepHighest implements Roller.RollKeepHighest
func (r *randomRoller) RollKeepHighest(sides, extra int) (*RollResult, error) {
	if extra < 0 {
		return nil, errors.New("invalid extra dice count")
	}

	result, err := r.Roll(1+extra, sides, 0)
	if err != nil {
		return nil, err
	}

	return &RollResult{
		Total:    result.Highest,
		Rolls:    result.Rolls,
		Count:    result.Count,
		Sides:    sides,
		RawTotal: result.Highest,
		Highest:  result.Highest,
		Lowest:   result.Lowest,
	}, nil
}

// RerollIfBelow implements Roller.RerollIfBelow
func (r *randomRoller) RerollIfBelow(sides, current, threshold int) (*RollResult, error) {
	if current >= threshold {
		return &RollResult{
			Total:    current,
			Rolls:    []int{current},
			Count:    1,
			Sides:    sides,
			RawTotal: current,
			Highest:  current,
			Lowest:   current,
		}, nil
	}
	return r.Roll(1, sides, 0)
}
