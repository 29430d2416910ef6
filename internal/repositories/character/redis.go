package character

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/rollkeeper/roll-api/internal/entities"
	"github.com/rollkeeper/roll-api/internal/errors"
	redisclient "github.com/rollkeeper/roll-api/internal/redis"
)

const (
	// Key patterns:
	//   character:{game}:{name}          character JSON
	//   character:owner:{game}:{user}    set of owned character names
	//   character:default:{game}:{user}  default character name
	characterKeyPrefix = "character:"
	ownerKeyPrefix     = "character:owner:"
	defaultKeyPrefix   = "character:default:"

	// Error messages
	errGameEmpty     = "game cannot be empty"
	errNameEmpty     = "character name cannot be empty"
	errOwnerEmpty    = "owner ID cannot be empty"
	errCharacterNil  = "character cannot be nil"
	errCharacterName = "character must have a name"
)

// RedisConfig contains configuration for the Redis character repository
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

// NewRedis creates a new Redis-backed character repository
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

// Get retrieves a character by game and name
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	data, err := r.client.Get(ctx, characterKey(input.Game, input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get character %s", input.Name)
	}

	var ch entities.Character
	if err := json.Unmarshal([]byte(data), &ch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character %s", input.Name)
	}

	return &GetOutput{Character: &ch}, nil
}

// Save creates or replaces a character record
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.Name == "" {
		return nil, errors.InvalidArgument(errCharacterName)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character %s", input.Character.Name)
	}

	if err := r.client.Set(ctx, characterKey(input.Game, input.Character.Name), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store character %s", input.Character.Name)
	}

	return &SaveOutput{}, nil
}

// Delete removes a character record
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	if err := r.client.Del(ctx, characterKey(input.Game, input.Name)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.Name)
	}

	return &DeleteOutput{}, nil
}

// ListOwned lists the character names a user owns in a game
func (r *redisRepository) ListOwned(ctx context.Context, input ListOwnedInput) (*ListOwnedOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	names, err := r.client.SMembers(ctx, ownerKey(input.Game, input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for %s", input.OwnerID)
	}

	return &ListOwnedOutput{Names: names}, nil
}

// AssignOwner adds a character to a user's owned set
func (r *redisRepository) AssignOwner(ctx context.Context, input AssignOwnerInput) error {
	if input.Game == "" {
		return errors.InvalidArgument(errGameEmpty)
	}
	if input.OwnerID == "" {
		return errors.InvalidArgument(errOwnerEmpty)
	}
	if input.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}

	if err := r.client.SAdd(ctx, ownerKey(input.Game, input.OwnerID), input.Name).Err(); err != nil {
		return errors.Wrapf(err, "failed to assign %s to %s", input.Name, input.OwnerID)
	}
	return nil
}

// ReleaseOwner removes a character from a user's owned set
func (r *redisRepository) ReleaseOwner(ctx context.Context, input ReleaseOwnerInput) error {
	if input.Game == "" {
		return errors.InvalidArgument(errGameEmpty)
	}
	if input.OwnerID == "" {
		return errors.InvalidArgument(errOwnerEmpty)
	}
	if input.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}

	if err := r.client.SRem(ctx, ownerKey(input.Game, input.OwnerID), input.Name).Err(); err != nil {
		return errors.Wrapf(err, "failed to release %s from %s", input.Name, input.OwnerID)
	}
	return nil
}

// GetDefault returns the user's default character name
func (r *redisRepository) GetDefault(ctx context.Context, input GetDefaultInput) (*GetDefaultOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument(errGameEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	name, err := r.client.Get(ctx, defaultKey(input.Game, input.OwnerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no default character for %s", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get default character for %s", input.OwnerID)
	}

	return &GetDefaultOutput{Name: name}, nil
}

// SetDefault records the user's default character name
func (r *redisRepository) SetDefault(ctx context.Context, input SetDefaultInput) error {
	if input.Game == "" {
		return errors.InvalidArgument(errGameEmpty)
	}
	if input.OwnerID == "" {
		return errors.InvalidArgument(errOwnerEmpty)
	}
	if input.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}

	if err := r.client.Set(ctx, defaultKey(input.Game, input.OwnerID), input.Name, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set default character for %s", input.OwnerID)
	}
	return nil
}

// ClearDefault removes the user's default character pointer
func (r *redisRepository) ClearDefault(ctx context.Context, input ClearDefaultInput) error {
	if input.Game == "" {
		return errors.InvalidArgument(errGameEmpty)
	}
	if input.OwnerID == "" {
		return errors.InvalidArgument(errOwnerEmpty)
	}

	if err := r.client.Del(ctx, defaultKey(input.Game, input.OwnerID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to clear default character for %s", input.OwnerID)
	}
	return nil
}

func characterKey(game, name string) string {
	return fmt.Sprintf("%s%s:%s", characterKeyPrefix, game, name)
}

func ownerKey(game, owner string) string {
	return fmt.Sprintf("%s%s:%s", ownerKeyPrefix, game, owner)
}

func defaultKey(game, owner string) string {
	return fmt.Sprintf("%s%s:%s", defaultKeyPrefix, game, owner)
}
