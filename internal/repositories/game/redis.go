package game

import (
	"context"

	"github.com/rollkeeper/roll-api/internal/errors"
	redisclient "github.com/rollkeeper/roll-api/internal/redis"
)

const (
	// All registered game names live in one set
	registryKey = "games"

	errGameEmpty = "game cannot be empty"
)

// RedisConfig contains configuration for the Redis game registry
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed game registry
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Register adds a game name to the registry
func (r *redisRepository) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}

	added, err := r.client.SAdd(ctx, registryKey, input.Game).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to register game %s", input.Game)
	}

	return &RegisterOutput{Created: added > 0}, nil
}

// Exists reports whether a game name is registered
func (r *redisRepository) Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}

	exists, err := r.client.SIsMember(ctx, registryKey, input.Game).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check game %s", input.Game)
	}

	return &ExistsOutput{Exists: exists}, nil
}

// List returns every registered game name
func (r *redisRepository) List(ctx context.Context) (*ListOutput, error) {
	games, err := r.client.SMembers(ctx, registryKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	return &ListOutput{Games: games}, nil
}
