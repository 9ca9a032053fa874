package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kerchief/duelbot/internal/models"
	"github.com/redis/go-redis/v9"
)

// scoresKey holds the whole snapshot as one value, preserving the
// load-once/overwrite-all contract of the file backend.
const scoresKey = "duel:scores"

// RedisConfig holds configuration for the Redis score repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Load retrieves the score snapshot from Redis
func (r *redisRepository) Load(ctx context.Context) (*LoadOutput, error) {
	data, err := r.client.Get(ctx, scoresKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &LoadOutput{Snapshot: models.ScoreSnapshot{}}, nil
		}
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	var snapshot models.ScoreSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}

	if snapshot == nil {
		snapshot = models.ScoreSnapshot{}
	}

	return &LoadOutput{Snapshot: snapshot}, nil
}

// Save overwrites the score snapshot in Redis
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	if err := r.client.Set(ctx, scoresKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}

	return nil
}
