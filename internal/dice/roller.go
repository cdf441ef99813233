package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Total before bonus
	Highest  int
	Lowest   int
}

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollKeepHighest rolls 1+extra dice and keeps the highest single result
	RollKeepHighest(sides, extra int) (*RollResult, error)

	// RerollIfBelow rerolls once when current is below threshold; the new
	// value stands even if lower. Returns current unchanged otherwise.
	RerollIfBelow(sides, current, threshold int) (*RollResult, error)
}
