package preferences

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
	"github.com/SoerenD/equipment-calculator-web/internal/errors"
	"github.com/SoerenD/equipment-calculator-web/internal/pkg/clock"
	redisclient "github.com/SoerenD/equipment-calculator-web/internal/redis"
)

const (
	preferencesKeyPrefix = "preferences:player:"

	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis preferences repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Clock == nil {
		return errors.InvalidArgument("clock cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed preferences repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := preferencesKeyPrefix + input.PlayerID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("preferences for player %s not found", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get preferences for player %s", input.PlayerID)
	}

	var prefs equipment.Preferences
	if err := json.Unmarshal([]byte(result), &prefs); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal preferences data")
	}

	return &GetOutput{
		Preferences: &prefs,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Preferences == nil {
		return nil, errors.InvalidArgument("preferences cannot be nil")
	}
	if input.Preferences.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	prefs := *input.Preferences
	prefs.UpdatedAt = r.clock.Now().Unix()

	jsonData, err := json.Marshal(&prefs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal preferences data")
	}

	key := preferencesKeyPrefix + prefs.PlayerID
	if err := r.client.Set(ctx, key, jsonData, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save preferences for player %s", prefs.PlayerID)
	}

	return &SaveOutput{
		Preferences: &prefs,
	}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := preferencesKeyPrefix + input.PlayerID

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete preferences for player %s", input.PlayerID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("preferences for player %s not found", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a player's preferences
// Exposed for testing purposes
func GetKey(playerID string) string {
	return preferencesKeyPrefix + playerID
}
