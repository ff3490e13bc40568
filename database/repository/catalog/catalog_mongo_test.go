package catalogRepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoServiceRepo_GetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns services and sorts by price", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ServiceCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "portrait"}, {Key: "name", Value: "Portrait Photography"}, {Key: "price", Value: int64(10000)}},
			bson.D{{Key: "id", Value: "wedding"}, {Key: "name", Value: "Wedding Photography"}, {Key: "price", Value: int64(50000)}},
		))
		repo := NewMongoServiceRepo(mt.DB)

		services, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, services, 2)
		assert.Equal(mt, "portrait", services[0].ID)
		assert.Equal(mt, int64(50000), services[1].Price)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		sort := evt.Command.Lookup("sort").Document()
		assert.Equal(mt, int32(1), sort.Lookup("price").Int32())
	})

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ServiceCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewMongoServiceRepo(mt.DB)

		services, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, services)
		assert.Empty(mt, services)
	})
}

func TestMongoPortfolioRepo_GetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("newest first", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + PortfolioCollection
		newer := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "p-2"}, {Key: "title", Value: "Beach wedding"}, {Key: "created_at", Value: newer}},
		))
		repo := NewMongoPortfolioRepo(mt.DB)

		items, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, "Beach wedding", items[0].Title)
		assert.True(mt, items[0].CreatedAt.Equal(newer))

		sort := mt.GetStartedEvent().Command.Lookup("sort").Document()
		assert.Equal(mt, int32(-1), sort.Lookup("created_at").Int32())
	})
}
