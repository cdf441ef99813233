package itemgen

//go:generate mockgen -destination=mock/mock_service.go -package=mockitemgen -source=service.go

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/grimveil/dicebound/internal/domain/affix"
	"github.com/grimveil/dicebound/internal/domain/scaling"
	engerr "github.com/grimveil/dicebound/internal/errors"
	"github.com/grimveil/dicebound/internal/registry"
	"github.com/grimveil/dicebound/internal/uuid"
)

// Rarity gates which affix tiers an item may draw from
type Rarity string

const (
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// rarityGeometry fixes the tier set and slot count per rarity
type rarityGeometry struct {
	AllowedTiers []int
	TierSlots    int
}

var rarityGeometries = map[Rarity]rarityGeometry{
	RarityUncommon: {AllowedTiers: []int{1}, TierSlots: 1},
	RarityRare:     {AllowedTiers: []int{1, 2}, TierSlots: 2},
	RarityEpic:     {AllowedTiers: []int{2, 3}, TierSlots: 3},
}

// RollInput describes the item being rolled
type RollInput struct {
	Family string
	Rarity Rarity
	Level  int

	// Heavy items double-roll: two affix instances per tier slot
	Heavy bool
}

// RollOutput carries the owned affix instances rolled for the item
type RollOutput struct {
	Instances     []*affix.RolledAffix
	PowerPosition float64
}

// Service rolls owned affix instances for generated items
type Service interface {
	// RollItemAffixes selects distinct templates from the family's tier
	// tables per the item's rarity and rolls each into an owned instance
	RollItemAffixes(ctx context.Context, input *RollInput) (*RollOutput, error)
}

type service struct {
	registry      *registry.Registry
	scaler        *scaling.Engine
	uuidGenerator uuid.Generator
	random        *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Registry      *registry.Registry
	Scaler        *scaling.Engine
	UUIDGenerator uuid.Generator
	Random        *rand.Rand // Optional - defaults to a time-seeded source
}

// NewService creates a new item generation service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		registry:      cfg.Registry,
		scaler:        cfg.Scaler,
		uuidGenerator: cfg.UUIDGenerator,
		random:        cfg.Random,
	}
	if svc.random == nil {
		svc.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return svc
}

// RollItemAffixes implements Service.RollItemAffixes
func (s *service) RollItemAffixes(_ context.Context, input *RollInput) (*RollOutput, error) {
	geometry, ok := rarityGeometries[input.Rarity]
	if !ok {
		return nil, engerr.InvalidArgumentf("unknown rarity %q", input.Rarity)
	}

	rollsPerSlot := 1
	if input.Heavy {
		rollsPerSlot = 2
	}

	pos := s.scaler.PowerPosition(input.Level)
	out := &RollOutput{PowerPosition: pos}

	for slot := 0; slot < geometry.TierSlots; slot++ {
		tier := geometry.AllowedTiers[s.random.Intn(len(geometry.AllowedTiers))]
		table := s.registry.Table(input.Family, tier)
		if len(table) == 0 {
			log.Printf("ItemGen: no %s affixes at tier %d, skipping slot", input.Family, tier)
			continue
		}

		for _, tpl := range s.pickDistinct(table, rollsPerSlot) {
			value, err := s.scaler.RollValue(tpl, pos)
			if err != nil {
				return nil, engerr.Wrapf(err, "rolling affix %q", tpl.Name)
			}
			out.Instances = append(out.Instances, &affix.RolledAffix{
				InstanceID:   s.uuidGenerator.New(),
				TemplateName: tpl.Name,
				Family:       tpl.Family,
				Tier:         tpl.Tier,
				Value:        value,
			})
		}
	}

	return out, nil
}

// pickDistinct draws up to n distinct templates from the table
func (s *service) pickDistinct(table []*affix.Affix, n int) []*affix.Affix {
	if n > len(table) {
		n = len(table)
	}

	indices := s.random.Perm(len(table))
	out := make([]*affix.Affix, 0, n)
	for _, i := range indices[:n] {
		out = append(out, table[i])
	}
	return out
}
