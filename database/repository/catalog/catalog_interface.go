package catalogRepo

import (
	"context"

	"photostudio/models"
)

// ServiceRepository defines read access to the service catalogue plus the
// upsert used for seeding.
type ServiceRepository interface {
	// GetAll returns every service ordered by ascending price.
	GetAll(ctx context.Context) ([]models.Service, error)
	// Upsert inserts or replaces the service with the same ID.
	Upsert(ctx context.Context, service models.Service) error
}

// PortfolioRepository defines read access to published portfolio items.
type PortfolioRepository interface {
	// GetAll returns every item, newest first.
	GetAll(ctx context.Context) ([]models.PortfolioItem, error)
	Upsert(ctx context.Context, item models.PortfolioItem) error
}
