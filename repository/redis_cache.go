package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache guarda informes de simulación en Redis bajo un prefijo
// propio, para que varias instancias compartan resultados ya calculados.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

const redisKeyPrefix = "hipoteca:"

// NewRedisCache creates a cache backed by the Redis server at addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, redisKeyPrefix+key, value, ttl).Err()
}
