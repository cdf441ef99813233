package templates

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/grimveil/dicebound/internal/domain/affix"
	engerr "github.com/grimveil/dicebound/internal/errors"
)

const (
	// Key patterns
	affixTableKeyPrefix = "template:affixtable:"
	diceAffixKeyPrefix  = "template:diceaffix:"
	statusKeyPrefix     = "template:status:"
	affixTableIndexKey  = "template:affixtables"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed template repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepository{client: cfg.Client}
}

// SaveAffixTable implements Repository.SaveAffixTable
func (r *redisRepository) SaveAffixTable(ctx context.Context, table *AffixTable) error {
	if table.Name == "" {
		return engerr.InvalidArgument("affix table requires a name")
	}
	for _, a := range table.Affixes {
		if err := affix.ValidateAffix(a); err != nil {
			return engerr.Wrapf(err, "affix table %q", table.Name)
		}
	}

	data, err := json.Marshal(table)
	if err != nil {
		return engerr.Wrapf(err, "marshaling affix table %q", table.Name)
	}

	if err := r.client.Set(ctx, affixTableKeyPrefix+table.Name, string(data), 0).Err(); err != nil {
		return engerr.Wrapf(err, "storing affix table %q", table.Name)
	}
	if err := r.client.SAdd(ctx, affixTableIndexKey, table.Name).Err(); err != nil {
		return engerr.Wrapf(err, "indexing affix table %q", table.Name)
	}
	return nil
}

// GetAffixTable implements Repository.GetAffixTable
func (r *redisRepository) GetAffixTable(ctx context.Context, name string) (*AffixTable, error) {
	data, err := r.client.Get(ctx, affixTableKeyPrefix+name).Result()
	if err == redis.Nil {
		return nil, engerr.NotFoundf("affix table %q not found", name)
	}
	if err != nil {
		return nil, engerr.Wrapf(err, "loading affix table %q", name)
	}

	var table AffixTable
	if err := json.Unmarshal([]byte(data), &table); err != nil {
		return nil, engerr.Wrapf(err, "unmarshaling affix table %q", name)
	}
	return &table, nil
}

// ListAffixTables implements Repository.ListAffixTables
func (r *redisRepository) ListAffixTables(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, affixTableIndexKey).Result()
	if err != nil {
		return nil, engerr.Wrap(err, "listing affix tables")
	}
	sort.Strings(names)
	return names, nil
}

// SaveDiceAffix implements Repository.SaveDiceAffix
func (r *redisRepository) SaveDiceAffix(ctx context.Context, da *affix.DiceAffix) error {
	if err := affix.ValidateDiceAffix(da); err != nil {
		return err
	}

	data, err := json.Marshal(da)
	if err != nil {
		return engerr.Wrapf(err, "marshaling dice affix %q", da.ID)
	}

	if err := r.client.Set(ctx, diceAffixKeyPrefix+da.ID, string(data), 0).Err(); err != nil {
		return engerr.Wrapf(err, "storing dice affix %q", da.ID)
	}
	return nil
}

// GetDiceAffix implements Repository.GetDiceAffix
func (r *redisRepository) GetDiceAffix(ctx context.Context, id string) (*affix.DiceAffix, error) {
	data, err := r.client.Get(ctx, diceAffixKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, engerr.NotFoundf("dice affix %q not found", id)
	}
	if err != nil {
		return nil, engerr.Wrapf(err, "loading dice affix %q", id)
	}

	var da affix.DiceAffix
	if err := json.Unmarshal([]byte(data), &da); err != nil {
		return nil, engerr.Wrapf(err, "unmarshaling dice affix %q", id)
	}
	return &da, nil
}

// SaveStatus implements Repository.SaveStatus
func (r *redisRepository) SaveStatus(ctx context.Context, status *affix.StatusAffix) error {
	if err := affix.ValidateStatusAffix(status); err != nil {
		return err
	}

	data, err := json.Marshal(status)
	if err != nil {
		return engerr.Wrapf(err, "marshaling status %q", status.StatusID)
	}

	if err := r.client.Set(ctx, statusKeyPrefix+status.StatusID, string(data), 0).Err(); err != nil {
		return engerr.Wrapf(err, "storing status %q", status.StatusID)
	}
	return nil
}

// GetStatus implements Repository.GetStatus
func (r *redisRepository) GetStatus(ctx context.Context, id string) (*affix.StatusAffix, error) {
	data, err := r.client.Get(ctx, statusKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, engerr.NotFoundf("status %q not found", id)
	}
	if err != nil {
		return nil, engerr.Wrapf(err, "loading status %q", id)
	}

	var status affix.StatusAffix
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		return nil, engerr.Wrapf(err, "unmarshaling status %q", id)
	}
	return &status, nil
}
