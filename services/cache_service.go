package services

import (
	"context"
	"encoding/json"
	"fmt"
	"smorgas_server/config"
	"smorgas_server/structs"
	"smorgas_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

const catalogCacheKey = "smorgas:catalog:products"

// CacheService wraps the shared Redis client. It backs the rate limiter
// counters and the product catalog cache.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with connection pooling.
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:    cfg.Cache.PoolSize,
			DialTimeout: cfg.Cache.DialTimeout,
			ReadTimeout: cfg.Cache.ReadTimeout,
		})
	})
	return redisClient
}

func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// IncrementRateLimit bumps the request counter for a client/scope pair and
// returns the new count within the window. The window starts when the first
// request creates the key.
func (cs *CacheService) IncrementRateLimit(ctx context.Context, clientIP, scope string, window time.Duration) (int64, error) {
	key := fmt.Sprintf("smorgas:ratelimit:%s:%s", scope, clientIP)

	count, err := cs.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := cs.client.Expire(ctx, key, window).Err(); err != nil {
			cs.logger.Warn("Failed to set rate limit window", gecho.Field("error", err))
		}
	}
	return count, nil
}

// GetCatalog returns the cached product catalog, or ok=false on a miss. Cache
// failures are reported as misses so the caller falls through to the database.
func (cs *CacheService) GetCatalog(ctx context.Context) (map[string][]tables.Product, bool) {
	raw, err := cs.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			cs.logger.Warn("Catalog cache read failed", gecho.Field("error", err))
		}
		return nil, false
	}

	var catalog map[string][]tables.Product
	if err := json.Unmarshal(raw, &catalog); err != nil {
		cs.logger.Warn("Catalog cache entry corrupt, dropping it", gecho.Field("error", err))
		cs.client.Del(ctx, catalogCacheKey)
		return nil, false
	}
	return catalog, true
}

// SetCatalog stores the grouped catalog with the configured TTL. Best-effort:
// failures are logged and swallowed.
func (cs *CacheService) SetCatalog(ctx context.Context, catalog map[string][]tables.Product) {
	raw, err := json.Marshal(catalog)
	if err != nil {
		cs.logger.Warn("Failed to encode catalog for cache", gecho.Field("error", err))
		return
	}
	if err := cs.client.Set(ctx, catalogCacheKey, raw, cs.config.Cache.CatalogTTL).Err(); err != nil {
		cs.logger.Warn("Failed to cache catalog", gecho.Field("error", err))
	}
}

// Health pings the cache.
func (cs *CacheService) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return cs.client.Ping(ctx).Err()
}
