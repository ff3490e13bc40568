package catalog

import (
	"context"

	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/models"

	"go.uber.org/zap"
)

// CatalogService serves the read-only studio catalogue.
type CatalogService interface {
	// GetServices returns the bookable services, cheapest first.
	GetServices(ctx context.Context) ([]models.Service, error)
	// GetPortfolio returns published work, newest first.
	GetPortfolio(ctx context.Context) ([]models.PortfolioItem, error)
	// Seed upserts the given services and portfolio items.
	Seed(ctx context.Context, services []models.Service, items []models.PortfolioItem) error
}

// DefaultCatalogService reads through Cache when it is set. Cache errors
// are logged and treated as misses.
type DefaultCatalogService struct {
	Services  catalogRepo.ServiceRepository
	Portfolio catalogRepo.PortfolioRepository
	Cache     ServiceCache
	Logger    *zap.Logger
}

func (s *DefaultCatalogService) GetServices(ctx context.Context) ([]models.Service, error) {
	if s.Cache != nil {
		services, ok, err := s.Cache.GetServices(ctx)
		if err != nil {
			s.log().Warn("GetServices: cache read failed", zap.Error(err))
		} else if ok {
			return services, nil
		}
	}

	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.SetServices(ctx, services); err != nil {
			s.log().Warn("GetServices: cache write failed", zap.Error(err))
		}
	}
	return services, nil
}

func (s *DefaultCatalogService) GetPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.Portfolio.GetAll(ctx)
}

func (s *DefaultCatalogService) Seed(ctx context.Context, services []models.Service, items []models.PortfolioItem) error {
	for _, svc := range services {
		if err := s.Services.Upsert(ctx, svc); err != nil {
			return err
		}
	}
	for _, item := range items {
		if err := s.Portfolio.Upsert(ctx, item); err != nil {
			return err
		}
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			s.log().Warn("Seed: cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultCatalogService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
