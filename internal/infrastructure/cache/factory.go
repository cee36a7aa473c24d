package cache

import (
	"fmt"

	"github.com/vibecoders/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// RatingCacheFactory creates rating caches based on configuration
type RatingCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// RatingCacheFactoryOption is a functional option for configuring the factory
type RatingCacheFactoryOption func(*RatingCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) RatingCacheFactoryOption {
	return func(f *RatingCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) RatingCacheFactoryOption {
	return func(f *RatingCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewRatingCacheFactory creates a new factory
func NewRatingCacheFactory(cfg config.RedisConfig, opts ...RatingCacheFactoryOption) *RatingCacheFactory {
	f := &RatingCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed rating cache
func (f *RatingCacheFactory) CreateRedisCache() (RatingCache, error) {
	redisCfg := RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}

	c, err := NewRedisRatingCache(redisCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis rating cache: %w", err)
	}

	return c, nil
}

// CreateInMemoryCache creates an in-memory rating cache.
// Suitable for single-instance deployments and testing.
func (f *RatingCacheFactory) CreateInMemoryCache() RatingCache {
	return NewInMemoryRatingCache()
}

// CreateCache tries Redis first and falls back to the in-memory cache
// when Redis is unavailable and fallback is allowed.
func (f *RatingCacheFactory) CreateCache() (RatingCache, error) {
	c, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis rating cache")
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for rating cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory rating cache. "+
		"Ratings cached in one instance will not be invalidated in others.",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
