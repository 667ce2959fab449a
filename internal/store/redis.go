package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// RedisRepository implements Repository on top of Redis, storing one JSON
// envelope per resume id
type RedisRepository struct {
	client *redis.Client
	logger logging.Logger
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *config.Config) *RedisRepository {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &RedisRepository{
		client: redis.NewClient(opts),
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Load retrieves the persisted envelope, or ErrNotFound
func (r *RedisRepository) Load(ctx context.Context, resumeID string) (*models.ResumeEnvelope, error) {
	data, err := r.client.Get(ctx, r.resumeKey(resumeID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume %s: %w", resumeID, err)
	}

	var env models.ResumeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", resumeID, err)
	}
	return &env, nil
}

// Save stores the envelope wholesale (last-write-wins, no expiry)
func (r *RedisRepository) Save(ctx context.Context, resumeID string, env models.ResumeEnvelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode resume %s: %w", resumeID, err)
	}

	if err := r.client.Set(ctx, r.resumeKey(resumeID), data, 0).Err(); err != nil {
		r.logger.Error("Failed to persist resume", map[string]interface{}{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to persist resume %s: %w", resumeID, err)
	}
	return nil
}

// Delete removes the persisted envelope
func (r *RedisRepository) Delete(ctx context.Context, resumeID string) error {
	return r.client.Del(ctx, r.resumeKey(resumeID)).Err()
}

func (r *RedisRepository) resumeKey(resumeID string) string {
	return fmt.Sprintf("resumeforge:resume:%s", resumeID)
}
