package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
)

func TestUserInsertDuplicateEmailRejected(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("same email registers exactly once", func(mt *mtest.T) {
		users := &UserStore{coll: mt.Coll}

		// First registration: the email lookup finds nothing, the write lands.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "kashvi.users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)
		id, err := users.Insert(context.Background(), &models.User{
			Username: "priya",
			Email:    "priya@example.com",
		})
		require.NoError(mt, err)
		assert.False(mt, id.IsZero())

		// Second registration with the same email: the lookup counts one
		// existing document and the insert never happens.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "kashvi.users", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)
		_, err = users.Insert(context.Background(), &models.User{
			Username: "priya-again",
			Email:    "priya@example.com",
		})
		assert.ErrorIs(mt, err, ErrDuplicateEmail)
	})
}

func TestUserDeleteIdempotence(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second delete yields not-found", func(mt *mtest.T) {
		users := &UserStore{coll: mt.Coll}
		id := "64f1b2a3c4d5e6f7a8b9c0d1"

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}),
		)

		require.NoError(mt, users.Delete(context.Background(), id))
		assert.ErrorIs(mt, users.Delete(context.Background(), id), ErrNotFound)
	})
}
