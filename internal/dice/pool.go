package dice

// Pool is an ordered sequence of dice. Adjacency is index distance 1;
// position predicates (first, last, even slot) read the die's index here.
type Pool struct {
	Dice []*Die
}

// NewPool creates a pool from the given dice
func NewPool(dice ...*Die) *Pool {
	return &Pool{Dice: dice}
}

// Len returns the number of dice in the pool
func (p *Pool) Len() int {
	return len(p.Dice)
}

// Get returns the die at index i, or nil if out of range
func (p *Pool) Get(i int) *Die {
	if i < 0 || i >= len(p.Dice) {
		return nil
	}
	return p.Dice[i]
}

// Left returns the left neighbor of index i, or nil
func (p *Pool) Left(i int) *Die {
	return p.Get(i - 1)
}

// Right returns the right neighbor of index i, or nil
func (p *Pool) Right(i int) *Die {
	return p.Get(i + 1)
}

// Neighbors returns the adjacent dice of index i, left first
func (p *Pool) Neighbors(i int) []*Die {
	var out []*Die
	if d := p.Left(i); d != nil {
		out = append(out, d)
	}
	if d := p.Right(i); d != nil {
		out = append(out, d)
	}
	return out
}

// Others returns every die except index i, in pool order
func (p *Pool) Others(i int) []*Die {
	out := make([]*Die, 0, len(p.Dice))
	for j, d := range p.Dice {
		if j != i {
			out = append(out, d)
		}
	}
	return out
}

// Total returns the sum of all die values
func (p *Pool) Total() int {
	total := 0
	for _, d := range p.Dice {
		total += d.Value
	}
	return total
}

// Snapshot captures every die's value, in pool order. Effects that read a
// neighbor's value use the snapshot taken at event start, not the live
// value, so same-event mutations don't compound.
func (p *Pool) Snapshot() []int {
	values := make([]int, len(p.Dice))
	for i, d := range p.Dice {
		values[i] = d.Value
	}
	return values
}

// IndexOf returns the index of the given die, or -1
func (p *Pool) IndexOf(die *Die) int {
	for i, d := range p.Dice {
		if d == die {
			return i
		}
	}
	return -1
}

// InsertAfter inserts a die immediately after index i
func (p *Pool) InsertAfter(i int, die *Die) {
	if i < 0 || i >= len(p.Dice) {
		p.Dice = append(p.Dice, die)
		return
	}
	p.Dice = append(p.Dice[:i+1], append([]*Die{die}, p.Dice[i+1:]...)...)
}

// Remove removes the die at index i
func (p *Pool) Remove(i int) {
	if i < 0 || i >= len(p.Dice) {
		return
	}
	p.Dice = append(p.Dice[:i], p.Dice[i+1:]...)
}
