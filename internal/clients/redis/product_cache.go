package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/ovenlight/mealdesk-backend/internal/domain/catalog"
	"github.com/ovenlight/mealdesk-backend/internal/platform/envutil"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

// ProductCache is a read-through cache over product reads. Misses and
// backend hiccups degrade to the database; the cache never becomes a
// source of failures.
type ProductCache interface {
	Get(ctx context.Context, id uint) (*types.Product, bool)
	Set(ctx context.Context, row *types.Product)
	Invalidate(ctx context.Context, id uint)
	Close() error
}

type productCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewProductCache connects to REDIS_ADDR. Callers should fall back to
// NewNoopProductCache when no address is configured.
func NewProductCache(log *logger.Logger) (ProductCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(envutil.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ttlSeconds := envutil.GetEnvAsInt("REDIS_CACHE_TTL", 300, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &productCache{
		log: log.With("service", "ProductCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (c *productCache) key(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *productCache) Get(ctx context.Context, id uint) (*types.Product, bool) {
	raw, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Cache read failed", "product_id", id, "error", err)
		}
		return nil, false
	}
	var row types.Product
	if err := json.Unmarshal(raw, &row); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", "product_id", id, "error", err)
		_ = c.rdb.Del(ctx, c.key(id)).Err()
		return nil, false
	}
	return &row, true
}

func (c *productCache) Set(ctx context.Context, row *types.Product) {
	if row == nil || row.ID == 0 {
		return
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(row.ID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", "product_id", row.ID, "error", err)
	}
}

func (c *productCache) Invalidate(ctx context.Context, id uint) {
	if id == 0 {
		return
	}
	if err := c.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn("Cache invalidation failed", "product_id", id, "error", err)
	}
}

func (c *productCache) Close() error {
	return c.rdb.Close()
}

type noopProductCache struct{}

// NewNoopProductCache returns a cache that never hits, for deployments
// without redis.
func NewNoopProductCache() ProductCache {
	return noopProductCache{}
}

func (noopProductCache) Get(context.Context, uint) (*types.Product, bool) { return nil, false }
func (noopProductCache) Set(context.Context, *types.Product)              {}
func (noopProductCache) Invalidate(context.Context, uint)                 {}
func (noopProductCache) Close() error                                     { return nil }
