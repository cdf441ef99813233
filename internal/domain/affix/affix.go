package affix

// Category groups affix templates by the equipment concern they modify
type Category string

const (
	CategoryArmor      Category = "armor"
	CategoryWeapon     Category = "weapon"
	CategoryHealth     Category = "health"
	CategoryMana       Category = "mana"
	CategorySpeed      Category = "speed"
	CategoryResistance Category = "resistance"
	CategoryUtility    Category = "utility"
)

// TagMultiplier marks an affix whose rolled value is a multiplier rather
// than a flat amount. Multiplier values round to 2 decimals when rolled.
const TagMultiplier = "multiplier"

// Affix is an authored modifier template. Templates are immutable; rolling
// one produces an owned RolledAffix bound to a single item or character.
// Either EffectNumber or the [EffectMin, EffectMax] range is meaningful,
// never both.
type Affix struct {
	Name         string   `json:"affix_name" yaml:"affix_name"`
	Description  string   `json:"description" yaml:"description"`
	Category     Category `json:"category" yaml:"category"`
	Family       string   `json:"family" yaml:"family"`
	Tier         int      `json:"tier" yaml:"tier"`
	EffectMin    float64  `json:"effect_min" yaml:"effect_min"`
	EffectMax    float64  `json:"effect_max" yaml:"effect_max"`
	EffectNumber float64  `json:"effect_number" yaml:"effect_number"`
	Tags         []string `json:"tags" yaml:"tags"`

	// Handles into the content registry, never embedded copies. Two
	// affixes wrapping the same dice affix observe one logical entity.
	WrappedDiceAffixID string `json:"wrapped_dice_affix,omitempty" yaml:"wrapped_dice_affix,omitempty"`
	GrantedActionID    string `json:"granted_action,omitempty" yaml:"granted_action,omitempty"`
}

// HasScalingRange reports whether the template rolls from a range rather
// than carrying a static number
func (a *Affix) HasScalingRange() bool {
	return a.EffectMin != 0 || a.EffectMax != 0
}

// HasTag checks whether the template carries the given tag
func (a *Affix) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsMultiplier reports whether rolled values are multipliers
func (a *Affix) IsMultiplier() bool {
	return a.HasTag(TagMultiplier)
}

// RolledAffix is an owned instance produced by rolling a template. It is
// bound to one item or character and destroyed when unequipped or consumed.
type RolledAffix struct {
	InstanceID   string  `json:"instance_id"`
	TemplateName string  `json:"template_name"`
	Family       string  `json:"family"`
	Tier         int     `json:"tier"`
	Value        float64 `json:"value"`
}

// Action is a usable ability granted by an affix. Its dice affixes are
// registry handles resolved at use time.
type Action struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	ManaCost     int      `json:"mana_cost" yaml:"mana_cost"`
	DiceAffixIDs []string `json:"dice_affixes" yaml:"dice_affixes"`
}
