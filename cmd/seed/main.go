// Command seed loads the default service catalogue and a starter portfolio
// into MongoDB and drops the cached service list.
package main

import (
	"context"
	"fmt"
	"time"

	"photostudio/config"
	"photostudio/database"
	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/models"
	"photostudio/services/catalog"
	"photostudio/utils"

	"go.uber.org/zap"
)

var portfolioCategories = []struct {
	Category string
	Title    string
}{
	{"wedding", "Sunset vows"},
	{"portrait", "Studio light portrait"},
	{"commercial", "Product launch shoot"},
	{"video", "Brand film stills"},
}

func starterPortfolio(now time.Time) []models.PortfolioItem {
	items := make([]models.PortfolioItem, 0, len(portfolioCategories))
	for i, pc := range portfolioCategories {
		items = append(items, models.PortfolioItem{
			ID:        fmt.Sprintf("%s-%d", pc.Category, i+1),
			Title:     pc.Title,
			Category:  pc.Category,
			ImageURL:  fmt.Sprintf("/images/portfolio/%s-%d.jpg", pc.Category, i+1),
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	return items
}

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer utils.SyncLogger()

	if err := database.Connect(context.Background()); err != nil {
		logger.Fatal("seed: database unavailable", zap.Error(err))
	}
	db := database.DB()

	svc := &catalog.DefaultCatalogService{
		Services:  catalogRepo.NewMongoServiceRepo(db),
		Portfolio: catalogRepo.NewMongoPortfolioRepo(db),
		Cache:     catalog.NewRedisServiceCache(utils.InitCache(), config.AppConfig.CatalogCacheTTL()),
		Logger:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items := starterPortfolio(time.Now().UTC())
	if err := svc.Seed(ctx, models.DefaultServices, items); err != nil {
		logger.Fatal("seed: failed to seed catalogue", zap.Error(err))
	}
	logger.Info("seed: catalogue seeded",
		zap.Int("services", len(models.DefaultServices)),
		zap.Int("portfolioItems", len(items)))

	if err := database.Close(ctx); err != nil {
		logger.Warn("seed: failed to disconnect", zap.Error(err))
	}
}
