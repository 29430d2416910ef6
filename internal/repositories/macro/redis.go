package macro

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/rollkeeper/roll-api/internal/errors"
	redisclient "github.com/rollkeeper/roll-api/internal/redis"
)

const (
	// Key pattern: macros:{game} (hash of name -> template)
	macroKeyPrefix = "macros:"

	errGameEmpty = "game cannot be empty"
	errNameEmpty = "macro name cannot be empty"
)

// RedisConfig contains configuration for the Redis macro repository
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

// NewRedis creates a new Redis-backed macro repository
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

// Set creates or replaces a global macro
func (r *redisRepository) Set(ctx context.Context, input SetInput) error {
	if input.Game == "" {
		return errors.InvalidArgument(errGameEmpty)
	}
	if input.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	if input.Template == "" {
		return errors.InvalidArgument("macro template cannot be empty")
	}

	if err := r.client.HSet(ctx, macroKey(input.Game), input.Name, input.Template).Err(); err != nil {
		return errors.Wrapf(err, "failed to store macro %s", input.Name)
	}
	return nil
}

// Delete removes a global macro
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	removed, err := r.client.HDel(ctx, macroKey(input.Game), input.Name).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete macro %s", input.Name)
	}

	return &DeleteOutput{Existed: removed > 0}, nil
}

// Get retrieves a single global macro template
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	template, err := r.client.HGet(ctx, macroKey(input.Game), input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("macro %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get macro %s", input.Name)
	}

	return &GetOutput{Template: template}, nil
}

// List returns the whole global macro table for a game
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}

	macros, err := r.client.HGetAll(ctx, macroKey(input.Game)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list macros for game %s", input.Game)
	}

	return &ListOutput{Macros: macros}, nil
}

func macroKey(game string) string {
	return fmt.Sprintf("%s%s", macroKeyPrefix, game)
}
