package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"storefront/internal/domain"
)

const (
	catalogCacheKey    = "storefront:catalog:available:v1"
	catalogLoadTimeout = 10 * time.Second
)

// ErrCacheMiss is returned by a CacheStore when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheStore is the byte cache behind CachedCatalog.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisStore adapts a go-redis client to CacheStore.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return raw, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// CachedCatalog serves available dishes from a shared cache, falling back to
// the wrapped repository on a miss or a cache failure. Concurrent misses share
// one database read.
type CachedCatalog struct {
	domain.DishRepository
	cache  CacheStore
	ttl    time.Duration
	logger zerolog.Logger
	group  singleflight.Group
}

func NewCachedCatalog(next domain.DishRepository, cache CacheStore, ttl time.Duration, logger zerolog.Logger) *CachedCatalog {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedCatalog{
		DishRepository: next,
		cache:          cache,
		ttl:            ttl,
		logger:         logger,
	}
}

func (c *CachedCatalog) ListAvailable(ctx context.Context) ([]domain.RawDish, error) {
	raw, err := c.cache.Get(ctx, catalogCacheKey)
	switch {
	case err == nil:
		var dishes []domain.RawDish
		if jsonErr := json.Unmarshal(raw, &dishes); jsonErr == nil {
			if dishes == nil {
				dishes = []domain.RawDish{}
			}
			return dishes, nil
		}
		c.logger.Warn().Str("key", catalogCacheKey).Msg("catalog cache: undecodable entry")
	case !errors.Is(err, ErrCacheMiss):
		c.logger.Warn().Err(err).Msg("catalog cache: read failed")
	}

	// The shared load outlives any one caller; each caller still honours its
	// own ctx while waiting.
	results := c.group.DoChan(catalogCacheKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), catalogLoadTimeout)
		defer cancel()
		dishes, err := c.DishRepository.ListAvailable(loadCtx)
		if err != nil {
			return nil, err
		}
		if encoded, err := json.Marshal(dishes); err == nil {
			if err := c.cache.Set(loadCtx, catalogCacheKey, encoded, c.ttl); err != nil {
				c.logger.Warn().Err(err).Msg("catalog cache: write failed")
			}
		}
		return dishes, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.RawDish), nil
	}
}

var _ domain.DishRepository = (*CachedCatalog)(nil)
