package game

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/manorgames/manor-api/internal/entities"
	"github.com/manorgames/manor-api/internal/errors"
	"github.com/manorgames/manor-api/internal/pkg/clock"
	redisclient "github.com/manorgames/manor-api/internal/redis"
)

const (
	// Key pattern: game:{game_id}
	gameKeyPrefix = "game:"
	defaultTTL    = 24 * time.Hour

	errGameNil     = "game cannot be nil"
	errGameIDEmpty = "game ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL applied on writes; defaults to 24h so abandoned games expire
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for game states
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new game state
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Game == nil {
		return nil, errors.InvalidArgument(errGameNil)
	}
	if input.Game.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	input.Game.CreatedAt = now
	input.Game.UpdatedAt = now

	data, err := json.Marshal(input.Game)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game %s", input.Game.ID)
	}

	key := gameKey(input.Game.ID)
	ok, err := r.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store game %s", input.Game.ID)
	}
	if !ok {
		return nil, errors.AlreadyExists("game already exists").WithMeta("game_id", input.Game.ID)
	}

	return &CreateOutput{Game: input.Game}, nil
}

// Get retrieves a game state by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	data, err := r.client.Get(ctx, gameKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("game not found").WithMeta("game_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get game %s", input.ID)
	}

	var game entities.GameState
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game %s", input.ID)
	}

	return &GetOutput{Game: &game}, nil
}

// Update overwrites an existing game state and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, game *entities.GameState) error {
	if game == nil {
		return errors.InvalidArgument(errGameNil)
	}
	if game.ID == "" {
		return errors.InvalidArgument(errGameIDEmpty)
	}

	game.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(game)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal game %s", game.ID)
	}

	key := gameKey(game.ID)
	ok, err := r.client.SetXX(ctx, key, data, r.ttl).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to update game %s", game.ID)
	}
	if !ok {
		return errors.NotFound("game not found").WithMeta("game_id", game.ID)
	}

	return nil
}

// Delete removes a game state
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	deleted, err := r.client.Del(ctx, gameKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete game %s", input.ID)
	}

	return &DeleteOutput{Deleted: deleted > 0}, nil
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}
