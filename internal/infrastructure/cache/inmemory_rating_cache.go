package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ratingEntry struct {
	rating    float64
	expiresAt time.Time
}

// InMemoryRatingCache implements RatingCache using an in-memory map.
// Suitable for single-instance deployments and testing.
// Ratings cached in one process are not visible to other instances.
type InMemoryRatingCache struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]ratingEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryRatingCache creates an in-memory rating cache.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryRatingCache() *InMemoryRatingCache {
	c := &InMemoryRatingCache{
		entries:  make(map[uuid.UUID]ratingEntry),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

// Get returns the cached rating, treating expired entries as misses.
func (c *InMemoryRatingCache) Get(ctx context.Context, recipeID uuid.UUID) (float64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[recipeID]
	if !exists || time.Now().After(e.expiresAt) {
		return 0, false, nil
	}
	return e.rating, true, nil
}

// Set stores the rating with a TTL.
func (c *InMemoryRatingCache) Set(ctx context.Context, recipeID uuid.UUID, rating float64, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[recipeID] = ratingEntry{
		rating:    rating,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Invalidate drops the cached rating for a recipe.
func (c *InMemoryRatingCache) Invalidate(ctx context.Context, recipeID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, recipeID)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemoryRatingCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryRatingCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *InMemoryRatingCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for id, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, id)
		}
	}
}

var _ RatingCache = (*InMemoryRatingCache)(nil)
