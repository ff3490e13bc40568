package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"photostudio/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceRepo struct {
	services []models.Service
	err      error
	calls    int
	upserted []string
}

func (f *fakeServiceRepo) GetAll(context.Context) ([]models.Service, error) {
	f.calls++
	return f.services, f.err
}

func (f *fakeServiceRepo) Upsert(_ context.Context, s models.Service) error {
	f.upserted = append(f.upserted, s.ID)
	return nil
}

type fakePortfolioRepo struct {
	items []models.PortfolioItem
}

func (f *fakePortfolioRepo) GetAll(context.Context) ([]models.PortfolioItem, error) {
	return f.items, nil
}

func (f *fakePortfolioRepo) Upsert(_ context.Context, item models.PortfolioItem) error {
	f.items = append(f.items, item)
	return nil
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestGetServices_ReadsThroughCache(t *testing.T) {
	mr, client := newRedis(t)
	repo := &fakeServiceRepo{services: models.DefaultServices[:2]}
	svc := &DefaultCatalogService{
		Services: repo,
		Cache:    NewRedisServiceCache(client, time.Minute),
	}

	first, err := svc.GetServices(context.Background())
	require.NoError(t, err)
	second, err := svc.GetServices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
	assert.True(t, mr.Exists(servicesCacheKey))
	assert.Equal(t, time.Minute, mr.TTL(servicesCacheKey))
}

func TestGetServices_CacheOutageFallsBackToStore(t *testing.T) {
	mr, client := newRedis(t)
	mr.Close()

	repo := &fakeServiceRepo{services: models.DefaultServices}
	svc := &DefaultCatalogService{Services: repo, Cache: NewRedisServiceCache(client, time.Minute)}

	services, err := svc.GetServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, len(models.DefaultServices))
}

func TestGetServices_StoreError(t *testing.T) {
	svc := &DefaultCatalogService{Services: &fakeServiceRepo{err: errors.New("down")}}
	_, err := svc.GetServices(context.Background())
	assert.Error(t, err)
}

func TestSeed_InvalidatesCache(t *testing.T) {
	mr, client := newRedis(t)
	require.NoError(t, mr.Set(servicesCacheKey, "[]"))

	repo := &fakeServiceRepo{}
	portfolio := &fakePortfolioRepo{}
	svc := &DefaultCatalogService{
		Services:  repo,
		Portfolio: portfolio,
		Cache:     NewRedisServiceCache(client, time.Minute),
	}

	err := svc.Seed(context.Background(), models.DefaultServices, []models.PortfolioItem{{ID: "p-1", Title: "Sunset portraits"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"portrait", "wedding", "video", "commercial"}, repo.upserted)
	assert.False(t, mr.Exists(servicesCacheKey))

	items, err := svc.GetPortfolio(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
