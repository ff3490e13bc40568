package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"photostudio/models"

	"github.com/go-redis/redis/v8"
)

const servicesCacheKey = "catalog:services"

// ServiceCache stores the ordered service list.
type ServiceCache interface {
	// GetServices returns ok=false on a miss.
	GetServices(ctx context.Context) ([]models.Service, bool, error)
	SetServices(ctx context.Context, services []models.Service) error
	Invalidate(ctx context.Context) error
}

type RedisServiceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisServiceCache(client *redis.Client, ttl time.Duration) ServiceCache {
	return &RedisServiceCache{client: client, ttl: ttl}
}

func (c *RedisServiceCache) GetServices(ctx context.Context) ([]models.Service, bool, error) {
	val, err := c.client.Get(ctx, servicesCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var services []models.Service
	if err := json.Unmarshal(val, &services); err != nil {
		return nil, false, err
	}
	return services, true, nil
}

func (c *RedisServiceCache) SetServices(ctx context.Context, services []models.Service) error {
	data, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, servicesCacheKey, data, c.ttl).Err()
}

func (c *RedisServiceCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, servicesCacheKey).Err()
}
