package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"photostudio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPortfolioRepo implements PortfolioRepository using MongoDB.
type MongoPortfolioRepo struct {
	coll *mongo.Collection
}

func NewMongoPortfolioRepo(db *mongo.Database) PortfolioRepository {
	return &MongoPortfolioRepo{coll: db.Collection(PortfolioCollection)}
}

func (r *MongoPortfolioRepo) GetAll(ctx context.Context) ([]models.PortfolioItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve portfolio: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.PortfolioItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	return items, nil
}

func (r *MongoPortfolioRepo) Upsert(ctx context.Context, item models.PortfolioItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": item.ID}, item, opts); err != nil {
		return fmt.Errorf("failed to upsert portfolio item %s: %w", item.ID, err)
	}
	return nil
}
