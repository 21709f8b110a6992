package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
)

func TestProductDeleteIdempotence(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second delete yields not-found", func(mt *mtest.T) {
		products := &ProductStore{coll: mt.Coll}
		id := primitive.NewObjectID().Hex()

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}),
		)

		require.NoError(mt, products.Delete(context.Background(), id))
		assert.ErrorIs(mt, products.Delete(context.Background(), id), ErrNotFound)
	})

	t.Run("malformed id is not-found without a round trip", func(t *testing.T) {
		products := &ProductStore{}
		assert.ErrorIs(t, products.Delete(context.Background(), "not-a-hex-id"), ErrNotFound)
	})
}

func TestProductInsertDerivesInStock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("zero stock is out of stock", func(mt *mtest.T) {
		products := &ProductStore{coll: mt.Coll}

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		product := &models.Product{Name: "Pearl Drops", Category: models.CategoryEarrings, Stock: 0, InStock: true}
		_, err := products.Insert(context.Background(), product)
		require.NoError(mt, err)
		assert.False(mt, product.InStock)

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		product = &models.Product{Name: "Pearl Drops", Category: models.CategoryEarrings, Stock: 3}
		_, err = products.Insert(context.Background(), product)
		require.NoError(mt, err)
		assert.True(mt, product.InStock)
	})
}
