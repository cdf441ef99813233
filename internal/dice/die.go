package dice

// Element is the elemental affinity of a die
type Element string

const (
	ElementNone  Element = "none"
	ElementFlame Element = "flame"
	ElementStorm Element = "storm"
	ElementFrost Element = "frost"
	ElementEarth Element = "earth"
	ElementVoid  Element = "void"
)

// SizeLadder is the fixed progression of die sizes. Die-type changes step
// along this ladder and clamp at the ends, never wrapping.
var SizeLadder = []int{4, 6, 8, 10, 12}

// StepSize moves a die size the given number of steps along the ladder.
// Sizes off the ladder are returned unchanged.
func StepSize(sides, steps int) int {
	idx := -1
	for i, s := range SizeLadder {
		if s == sides {
			idx = i
			break
		}
	}
	if idx < 0 {
		return sides
	}

	idx += steps
	if idx < 0 {
		idx = 0
	}
	if idx >= len(SizeLadder) {
		idx = len(SizeLadder) - 1
	}
	return SizeLadder[idx]
}

// Die is a single positioned die in a pool
type Die struct {
	Sides   int
	Element Element
	Value   int
	Locked  bool // Locked dice keep their value through rerolls
}

// IsMaxed returns true if the die rolled its top face
func (d *Die) IsMaxed() bool {
	return d.Value == d.Sides
}
