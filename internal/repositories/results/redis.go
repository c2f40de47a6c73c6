package results

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	redis "github.com/redis/go-redis/v9"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
	"github.com/SoerenD/equipment-calculator-web/internal/errors"
	redisclient "github.com/SoerenD/equipment-calculator-web/internal/redis"
)

const (
	resultKeyPrefix = "loadout:result:"
	generationKey   = "loadout:result:gen"

	// DefaultTTL is the entry lifetime used when RedisConfig.TTL is
	// zero. Orphaned generations rely on it to drain.
	DefaultTTL = time.Hour

	errKeyEmpty = "key cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis result cache.
type RedisConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed result cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	gen, err := r.generation(ctx)
	if err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, entryKey(gen, input.Key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no cached result for key %s", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get cached result for key %s", input.Key)
	}

	var result Result
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cached result")
	}

	return &GetOutput{
		Result: &result,
	}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Result == nil {
		return nil, errors.InvalidArgument("result cannot be nil")
	}
	if input.Generation < 0 {
		return nil, errors.InvalidArgument("generation cannot be negative")
	}

	data, err := json.Marshal(input.Result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal result")
	}

	if err := r.client.Set(ctx, entryKey(input.Generation, input.Key), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache result for key %s", input.Key)
	}

	return &SetOutput{}, nil
}

func (r *redisRepository) Generation(ctx context.Context, _ GenerationInput) (*GenerationOutput, error) {
	gen, err := r.generation(ctx)
	if err != nil {
		return nil, err
	}

	return &GenerationOutput{
		Generation: gen,
	}, nil
}

func (r *redisRepository) InvalidateAll(ctx context.Context, _ InvalidateAllInput) (*InvalidateAllOutput, error) {
	gen, err := r.client.Incr(ctx, generationKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to bump cache generation")
	}

	return &InvalidateAllOutput{
		Generation: gen,
	}, nil
}

// generation reads the current cache generation. A missing counter
// means the cache was never invalidated and reads as generation zero.
func (r *redisRepository) generation(ctx context.Context) (int64, error) {
	val, err := r.client.Get(ctx, generationKey).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to read cache generation")
	}

	gen, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse cache generation")
	}
	return gen, nil
}

func entryKey(generation int64, key string) string {
	return fmt.Sprintf("%s%d:%s", resultKeyPrefix, generation, key)
}

// RequestKey derives the cache key for a unit profile. Profiles with
// identical fields hash identically, so repeated queries share one
// entry.
func RequestKey(profile *equipment.UnitProfile) string {
	data, err := json.Marshal(profile)
	if err != nil {
		// UnitProfile contains only marshalable fields
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
