package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/application/pricing"
	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/infrastructure/config"
)

// RedisPromotionCache caches the active promotion set per product in Redis.
// Entries are short-lived; a stale read only delays a price change by the
// TTL, it never produces a wrong calculation.
type RedisPromotionCache struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
}

// NewRedisClient creates a Redis client from configuration and verifies the
// connection.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisPromotionCache creates a promotion cache backed by an existing client
func NewRedisPromotionCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisPromotionCache {
	return &RedisPromotionCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: "pricing:promotions:",
		logger:    logger.Named("promotion_cache"),
	}
}

func (c *RedisPromotionCache) key(storeID, productID uuid.UUID) string {
	return c.keyPrefix + storeID.String() + ":" + productID.String()
}

// Get returns the cached promotion set for a product. A decode failure or a
// Redis error is treated as a miss so pricing falls through to the database.
func (c *RedisPromotionCache) Get(ctx context.Context, storeID, productID uuid.UUID) ([]catalog.Promotion, bool) {
	payload, err := c.client.Get(ctx, c.key(storeID, productID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("promotion cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var promotions []catalog.Promotion
	if err := json.Unmarshal(payload, &promotions); err != nil {
		c.logger.Warn("promotion cache entry corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, c.key(storeID, productID))
		return nil, false
	}
	return promotions, true
}

// Set stores the promotion set for a product with the configured TTL
func (c *RedisPromotionCache) Set(ctx context.Context, storeID, productID uuid.UUID, promotions []catalog.Promotion) {
	payload, err := json.Marshal(promotions)
	if err != nil {
		c.logger.Warn("promotion cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key(storeID, productID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("promotion cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached promotion set for a product
func (c *RedisPromotionCache) Invalidate(ctx context.Context, storeID, productID uuid.UUID) {
	if err := c.client.Del(ctx, c.key(storeID, productID)).Err(); err != nil {
		c.logger.Warn("promotion cache invalidation failed", zap.Error(err))
	}
}

var _ pricing.PromotionCache = (*RedisPromotionCache)(nil)
