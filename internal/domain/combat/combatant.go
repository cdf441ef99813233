package combat

import (
	"math"

	"github.com/grimveil/dicebound/internal/dice"
)

// Combatant is one side of a combat encounter. Index is its position in
// the encounter's enemy line; chain and splash damage walk that line.
type Combatant struct {
	ID             string
	Name           string
	Index          int
	MaxHP          int
	HP             int
	MaxMana        int
	Mana           int
	LastActionCost int // Mana spent on the most recent action, for refunds
	RerollCharges  int
	Resistances    map[dice.Element]float64 // Fraction of damage absorbed
	Alive          bool
}

// NewCombatant creates a live combatant with full pools
func NewCombatant(id, name string, index, maxHP, maxMana int) *Combatant {
	return &Combatant{
		ID:          id,
		Name:        name,
		Index:       index,
		MaxHP:       maxHP,
		HP:          maxHP,
		MaxMana:     maxMana,
		Mana:        maxMana,
		Resistances: make(map[dice.Element]float64),
		Alive:       true,
	}
}

// Resistance returns the fraction of incoming damage of the element the
// combatant absorbs
func (c *Combatant) Resistance(element dice.Element) float64 {
	return c.Resistances[element]
}

// TakeDamage reduces HP and reports whether this killed the combatant
func (c *Combatant) TakeDamage(amount int) bool {
	if !c.Alive || amount <= 0 {
		return false
	}
	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		c.Alive = false
		return true
	}
	return false
}

// Heal restores HP up to the maximum
func (c *Combatant) Heal(amount int) {
	if !c.Alive || amount <= 0 {
		return
	}
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

// AdjustMana shifts the mana pool, clamped to [0, MaxMana]
func (c *Combatant) AdjustMana(amount float64) {
	c.Mana += int(math.Round(amount))
	if c.Mana < 0 {
		c.Mana = 0
	}
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
}
