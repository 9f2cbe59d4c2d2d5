package team

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares team context across instances behind a load
// balancer, so a switch handled by one instance is visible to the
// next request wherever it lands.
type RedisCache struct {
	client redis.UniversalClient
}

func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]Team, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var teams []Team
	if err := json.Unmarshal(data, &teams); err != nil {
		// A corrupt entry behaves like a miss and gets overwritten on
		// the next Set.
		return nil, false
	}
	return teams, true
}

func (c *RedisCache) Set(ctx context.Context, key string, teams []Team, ttl time.Duration) error {
	data, err := json.Marshal(teams)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
