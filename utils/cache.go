// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"photostudio/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. An unreachable Redis is
// logged and tolerated; callers treat cache errors as misses.
func InitCache() *redis.Client {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := CacheClient.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis cache unavailable, continuing without it", zap.Error(err))
	}
	return CacheClient
}
