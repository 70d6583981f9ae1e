package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

const redisKeyPrefix = "football-portal:upstream:"

// RedisResponseCache shares upstream response bodies between instances.
// Redis failures degrade to an uncached load.
type RedisResponseCache struct {
	client *redis.Client
	logger *logging.Logger
}

func NewRedisResponseCache(ctx context.Context, redisURL string, logger *logging.Logger) (*RedisResponseCache, error) {
	if logger == nil {
		logger = logging.Default()
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisResponseCache{client: client, logger: logger}, nil
}

func (c *RedisResponseCache) Fetch(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	redisKey := buildRedisKey(key)

	cached, err := c.client.Get(ctx, redisKey).Bytes()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "redis response cache get failed", "error", err)
	}

	raw, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, redisKey, raw, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis response cache set failed", "error", err)
	}
	return raw, nil
}

func (c *RedisResponseCache) Close() error {
	return c.client.Close()
}

func buildRedisKey(key string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(redisKeyPrefix)
	_, _ = buf.WriteString(key)
	return buf.String()
}
