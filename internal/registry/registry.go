// Package registry holds the process-wide immutable content catalogs:
// affix tables, dice affixes, statuses, actions and the scaling config.
// Loaded once, then shared as a read-only reference.
package registry

import (
	"sort"

	"github.com/grimveil/dicebound/internal/domain/affix"
	"github.com/grimveil/dicebound/internal/domain/scaling"
	"github.com/grimveil/dicebound/internal/domain/skills"
	engerr "github.com/grimveil/dicebound/internal/errors"
)

// TableKey addresses an affix table by family and tier
type TableKey struct {
	Family string
	Tier   int
}

// Registry is the immutable content catalog. Cross-references between
// templates (an affix wrapping a dice affix, an action granting effects)
// are handles resolved here, so two wrappers of the same template
// observe one logical entity.
type Registry struct {
	affixes     map[string]*affix.Affix
	tables      map[TableKey][]*affix.Affix
	diceAffixes map[string]*affix.DiceAffix
	statuses    map[string]*affix.StatusAffix
	actions     map[string]*affix.Action
	scaling     *scaling.Config
	skillGraph  *skills.Graph
}

// Config holds the raw content for building a registry
type Config struct {
	Affixes        []*affix.Affix
	DiceAffixes    []*affix.DiceAffix
	Statuses       []*affix.StatusAffix
	Actions        []*affix.Action
	Scaling        *scaling.Config
	SkillNodes     []*skills.Node
	TierThresholds []int
}

// New builds a registry, validating every template. Malformed templates
// halt their own registration and are reported as warnings; one bad
// template never blocks the rest of the catalog.
func New(cfg *Config) (*Registry, []affix.Warning, error) {
	r := &Registry{
		affixes:     make(map[string]*affix.Affix),
		tables:      make(map[TableKey][]*affix.Affix),
		diceAffixes: make(map[string]*affix.DiceAffix),
		statuses:    make(map[string]*affix.StatusAffix),
		actions:     make(map[string]*affix.Action),
		scaling:     cfg.Scaling,
	}

	var warnings []affix.Warning

	for _, d := range cfg.DiceAffixes {
		if err := affix.ValidateDiceAffix(d); err != nil {
			warnings = append(warnings, affix.Warning{TemplateID: d.ID, Err: err})
			continue
		}
		if _, exists := r.diceAffixes[d.ID]; exists {
			warnings = append(warnings, affix.Warning{TemplateID: d.ID, Err: engerr.AlreadyExists("duplicate dice affix " + d.ID)})
			continue
		}
		r.diceAffixes[d.ID] = d
	}

	for _, act := range cfg.Actions {
		if act.ID == "" {
			warnings = append(warnings, affix.Warning{Err: engerr.Validation("action missing id")})
			continue
		}
		if err := r.checkActionHandles(act); err != nil {
			warnings = append(warnings, affix.Warning{TemplateID: act.ID, Err: err})
			continue
		}
		r.actions[act.ID] = act
	}

	for _, a := range cfg.Affixes {
		if err := affix.ValidateAffix(a); err != nil {
			warnings = append(warnings, affix.Warning{TemplateID: a.Name, Err: err})
			continue
		}
		if err := r.checkHandles(a); err != nil {
			warnings = append(warnings, affix.Warning{TemplateID: a.Name, Err: err})
			continue
		}
		if _, exists := r.affixes[a.Name]; exists {
			warnings = append(warnings, affix.Warning{TemplateID: a.Name, Err: engerr.AlreadyExists("duplicate affix " + a.Name)})
			continue
		}
		r.affixes[a.Name] = a
		key := TableKey{Family: a.Family, Tier: a.Tier}
		r.tables[key] = append(r.tables[key], a)
	}

	for _, s := range cfg.Statuses {
		if err := affix.ValidateStatusAffix(s); err != nil {
			warnings = append(warnings, affix.Warning{TemplateID: s.StatusID, Err: err})
			continue
		}
		r.statuses[s.StatusID] = s
	}

	if r.scaling == nil {
		r.scaling = scaling.DefaultConfig()
	}
	if err := r.scaling.Validate(); err != nil {
		return nil, warnings, err
	}

	if len(cfg.SkillNodes) > 0 {
		graph, err := skills.NewGraph(&skills.GraphConfig{
			Nodes:          cfg.SkillNodes,
			TierThresholds: cfg.TierThresholds,
		})
		if err != nil {
			return nil, warnings, err
		}
		r.skillGraph = graph
	}

	return r, warnings, nil
}

// checkHandles verifies an affix's registry references point at loaded
// templates
func (r *Registry) checkHandles(a *affix.Affix) error {
	if a.WrappedDiceAffixID != "" {
		if _, ok := r.diceAffixes[a.WrappedDiceAffixID]; !ok {
			return engerr.Validationf("affix %q wraps unknown dice affix %q", a.Name, a.WrappedDiceAffixID)
		}
	}
	if a.GrantedActionID != "" {
		if _, ok := r.actions[a.GrantedActionID]; !ok {
			return engerr.Validationf("affix %q grants unknown action %q", a.Name, a.GrantedActionID)
		}
	}
	return nil
}

// checkActionHandles verifies an action's dice affix references point at
// loaded templates
func (r *Registry) checkActionHandles(act *affix.Action) error {
	for _, id := range act.DiceAffixIDs {
		if _, ok := r.diceAffixes[id]; !ok {
			return engerr.Validationf("action %q references unknown dice affix %q", act.ID, id)
		}
	}
	return nil
}

// Affix returns an affix template by name
func (r *Registry) Affix(name string) (*affix.Affix, error) {
	a, ok := r.affixes[name]
	if !ok {
		return nil, engerr.NotFoundf("affix %q not registered", name)
	}
	return a, nil
}

// DiceAffix returns a dice affix template by id
func (r *Registry) DiceAffix(id string) (*affix.DiceAffix, error) {
	d, ok := r.diceAffixes[id]
	if !ok {
		return nil, engerr.NotFoundf("dice affix %q not registered", id)
	}
	return d, nil
}

// Status returns a status template by id
func (r *Registry) Status(id string) (*affix.StatusAffix, error) {
	s, ok := r.statuses[id]
	if !ok {
		return nil, engerr.NotFoundf("status %q not registered", id)
	}
	return s, nil
}

// Action returns an action template by id
func (r *Registry) Action(id string) (*affix.Action, error) {
	a, ok := r.actions[id]
	if !ok {
		return nil, engerr.NotFoundf("action %q not registered", id)
	}
	return a, nil
}

// StatusCatalog returns the status templates keyed by id, for the ledger
func (r *Registry) StatusCatalog() map[string]*affix.StatusAffix {
	return r.statuses
}

// Table returns the ordered affix templates of one family and tier
func (r *Registry) Table(family string, tier int) []*affix.Affix {
	return r.tables[TableKey{Family: family, Tier: tier}]
}

// Families lists the distinct affix families, sorted
func (r *Registry) Families() []string {
	seen := make(map[string]bool)
	for key := range r.tables {
		seen[key.Family] = true
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Scaling returns the scaling configuration
func (r *Registry) Scaling() *scaling.Config {
	return r.scaling
}

// SkillGraph returns the validated skill tree, or nil when no skills
// were loaded
func (r *Registry) SkillGraph() *skills.Graph {
	return r.skillGraph
}
