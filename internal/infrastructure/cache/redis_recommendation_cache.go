package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beneficios_inss/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisRecommendationCache stores assistant answers as plain strings with a TTL.
type RedisRecommendationCache struct {
	client redis.UniversalClient
}

var _ interfaces.IRecommendationCache = (*RedisRecommendationCache)(nil)

func NewRedisRecommendationCache(client redis.UniversalClient) *RedisRecommendationCache {
	return &RedisRecommendationCache{client: client}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info().Str("addr", opts.Addr).Msg("[cache][redis] connected")
	return client, nil
}

func (c *RedisRecommendationCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisRecommendationCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
