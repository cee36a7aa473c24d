package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisRatingCache implements RatingCache using Redis.
// Suitable for multi-instance deployments where all instances
// should observe the same invalidations.
type RedisRatingCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisRatingCache creates a Redis-backed rating cache and verifies
// connectivity before returning.
func NewRedisRatingCache(cfg RedisConfig) (*RedisRatingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRatingCache{
		client:    client,
		keyPrefix: "recipe:rating:",
	}, nil
}

// NewRedisRatingCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisRatingCacheWithClient(client *redis.Client, keyPrefix string) *RedisRatingCache {
	if keyPrefix == "" {
		keyPrefix = "recipe:rating:"
	}
	return &RedisRatingCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (c *RedisRatingCache) key(recipeID uuid.UUID) string {
	return c.keyPrefix + recipeID.String()
}

// Get returns the cached rating for a recipe, or a miss when the key
// is absent or has expired.
func (c *RedisRatingCache) Get(ctx context.Context, recipeID uuid.UUID) (float64, bool, error) {
	val, err := c.client.Get(ctx, c.key(recipeID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get cached rating: %w", err)
	}

	rating, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cached rating %q: %w", val, err)
	}
	return rating, true, nil
}

// Set stores the rating with a TTL.
func (c *RedisRatingCache) Set(ctx context.Context, recipeID uuid.UUID, rating float64, ttl time.Duration) error {
	val := strconv.FormatFloat(rating, 'f', -1, 64)
	if err := c.client.Set(ctx, c.key(recipeID), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rating: %w", err)
	}
	return nil
}

// Invalidate drops the cached rating for a recipe.
func (c *RedisRatingCache) Invalidate(ctx context.Context, recipeID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(recipeID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached rating: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisRatingCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisRatingCache) GetClient() *redis.Client {
	return c.client
}

var _ RatingCache = (*RedisRatingCache)(nil)
