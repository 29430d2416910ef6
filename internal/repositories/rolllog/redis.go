package rolllog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rollkeeper/roll-api/internal/errors"
	redisclient "github.com/rollkeeper/roll-api/internal/redis"
)

const (
	// Key pattern: roll_log:{game}:{user}, a list of record JSON
	// with the newest at the head
	rollLogKeyPrefix = "roll_log:"

	// MaxRecords caps the retained history per user
	MaxRecords = 50

	// DefaultTTL is how long an idle history survives
	DefaultTTL = 24 * time.Hour

	errGameEmpty = "game cannot be empty"
	errUserEmpty = "user ID cannot be empty"
)

// RedisConfig contains configuration for the Redis roll log
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

// NewRedis creates a new Redis-backed roll log
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

// Append adds a record, trimming the history to its retention cap
func (r *redisRepository) Append(ctx context.Context, input AppendInput) error {
	if input.Game == "" {
		return errors.InvalidArgument(errGameEmpty)
	}
	if input.UserID == "" {
		return errors.InvalidArgument(errUserEmpty)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return errors.Wrap(err, "failed to marshal roll record")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	key := rollLogKey(input.Game, input.UserID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, MaxRecords-1)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to append roll record for %s", input.UserID)
	}

	return nil
}

// List returns the most recent records, newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserEmpty)
	}

	stop := int64(MaxRecords - 1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	entries, err := r.client.LRange(ctx, rollLogKey(input.Game, input.UserID), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rolls for %s", input.UserID)
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		var record Record
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal roll record")
		}
		records = append(records, record)
	}

	return &ListOutput{Records: records}, nil
}

// Clear drops the whole history for a user
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserEmpty)
	}

	key := rollLogKey(input.Game, input.UserID)

	count, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count rolls for %s", input.UserID)
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear rolls for %s", input.UserID)
	}

	return &ClearOutput{Deleted: count}, nil
}

func rollLogKey(game, user string) string {
	return fmt.Sprintf("%s%s:%s", rollLogKeyPrefix, game, user)
}
