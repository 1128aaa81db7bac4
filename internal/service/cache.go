// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dangerclosesec/redline/internal/cache"
	"github.com/dangerclosesec/redline/internal/domain"
)

// CacheService provides caching functionality with type safety and error handling
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)

	// Start the cleanup routine
	ctx := context.Background()
	c.StartCleanup(ctx)

	return &CacheService{
		cache: c,
	}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Set(ctx, key, value)
	return nil
}

// Get retrieves a value from the cache with type conversion
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	if result == nil {
		return nil
	}

	// Round-trip through JSON to convert into the caller's type
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cached value: %w", err)
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}

	return nil
}

// Delete removes a key from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Delete(ctx, key)
	return nil
}

// GetOrSet returns the cached value for key, calling fetch and caching its
// result on a miss.
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetch func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}
	if err != domain.ErrNotFound {
		return err
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	if err := s.Set(ctx, key, value); err != nil {
		return err
	}

	return s.Get(ctx, key, result)
}

// Close stops the cache cleanup routine
func (s *CacheService) Close() {
	s.cache.Close()
}
