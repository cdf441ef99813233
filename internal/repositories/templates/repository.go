package templates

//go:generate mockgen -destination=mock/mock_repository.go -package=mocktemplates -source=repository.go

import (
	"context"

	"github.com/grimveil/dicebound/internal/domain/affix"
)

// AffixTable is a named ordered collection of affix templates for one
// family and tier, as produced by the content tooling. Names are stable
// identifiers: re-saving a regenerated table must keep the same name.
type AffixTable struct {
	Name    string         `json:"name"`
	Family  string         `json:"family"`
	Tier    int            `json:"tier"`
	Affixes []*affix.Affix `json:"affixes"`
}

// Repository persists named template collections
type Repository interface {
	// SaveAffixTable stores a table under its name, replacing a previous
	// version
	SaveAffixTable(ctx context.Context, table *AffixTable) error

	// GetAffixTable loads a table by name
	GetAffixTable(ctx context.Context, name string) (*AffixTable, error)

	// ListAffixTables returns the stored table names, sorted
	ListAffixTables(ctx context.Context) ([]string, error)

	// SaveDiceAffix stores a dice affix template under its id
	SaveDiceAffix(ctx context.Context, da *affix.DiceAffix) error

	// GetDiceAffix loads a dice affix template by id
	GetDiceAffix(ctx context.Context, id string) (*affix.DiceAffix, error)

	// SaveStatus stores a status template under its id
	SaveStatus(ctx context.Context, status *affix.StatusAffix) error

	// GetStatus loads a status template by id
	GetStatus(ctx context.Context, id string) (*affix.StatusAffix, error)
}
