package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alimikegami/point-of-sales/ecommerce-service/config"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const productKeyPrefix = "product:"

// ProductCache holds product snapshots by id. Products never change after
// creation, so entries only expire through the TTL.
type ProductCache interface {
	Get(ctx context.Context, id string) (product domain.Product, ok bool)
	Set(ctx context.Context, product domain.Product)
	Close() error
}

type RedisProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func CreateRedisClient(config *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.RedisConfig.Addr,
		Password: config.RedisConfig.Password,
	})
}

// CreateProductCache returns a Redis backed cache, or a no-op one when Redis
// is not configured.
func CreateProductCache(config *config.Config) ProductCache {
	if config.RedisConfig.Addr == "" {
		return NoopProductCache{}
	}

	return NewRedisProductCache(CreateRedisClient(config), config.RedisConfig.ProductTTL)
}

func NewRedisProductCache(rdb *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{rdb: rdb, ttl: ttl}
}

// Get reports a miss on any Redis failure so callers fall back to the database.
func (c *RedisProductCache) Get(ctx context.Context, id string) (product domain.Product, ok bool) {
	val, err := c.rdb.Get(ctx, productKeyPrefix+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Ctx(ctx).Warn().Err(err).Str("component", "ProductCache.Get").Msg("")
		}
		return product, false
	}

	if err := json.Unmarshal(val, &product); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ProductCache.Get").Msg("")
		return product, false
	}

	return product, true
}

func (c *RedisProductCache) Set(ctx context.Context, product domain.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ProductCache.Set").Msg("")
		return
	}

	if err := c.rdb.Set(ctx, productKeyPrefix+product.ID.Hex(), data, c.ttl).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ProductCache.Set").Msg("")
	}
}

func (c *RedisProductCache) Close() error {
	return c.rdb.Close()
}

type NoopProductCache struct{}

func (NoopProductCache) Get(ctx context.Context, id string) (domain.Product, bool) {
	return domain.Product{}, false
}

func (NoopProductCache) Set(ctx context.Context, product domain.Product) {}

func (NoopProductCache) Close() error {
	return nil
}
