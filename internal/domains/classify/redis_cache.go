package classify

import (
	"context"
	"time"

	"github.com/go-redis/redis"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *Logger.Logger
}

// NewRedisCache wraps a redis client as a ResponseCache. Cache errors
// are logged and treated as misses; redis being down never blocks
// classification.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *Logger.Logger) ResponseCache {
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warnf("redis get failed for %s: %v", key, err)
		return "", false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key string, value string) {
	if err := c.client.Set(key, value, c.ttl).Err(); err != nil {
		c.logger.Warnf("redis set failed for %s: %v", key, err)
	}
}
