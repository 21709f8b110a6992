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

func TestOrderRoundTrip(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fetch returns the order exactly as submitted", func(mt *mtest.T) {
		orders := &OrderStore{coll: mt.Coll}

		order := &models.Order{
			OrderNumber: models.NewOrderNumber(),
			Customer: models.OrderCustomer{
				Name:   "Priya Sharma",
				Email:  "priya@example.com",
				Mobile: "9876543210",
			},
			Address: models.ShippingAddress{
				Line1:   "12 MG Road",
				City:    "Pune",
				State:   "Maharashtra",
				Pincode: "411001",
				Country: "India",
			},
			Items: []models.OrderItem{
				{
					ProductID:  "64f1b2a3c4d5e6f7a8b9c0d1",
					Name:       "Kundan Choker",
					Price:      "₹5,000",
					PriceValue: 5000,
					Quantity:   1,
					Category:   models.CategoryNecklace,
				},
			},
			Pricing:       models.OrderPricing{Subtotal: 5000, Shipping: 100, Tax: 250, Total: 5350},
			PaymentMethod: "cod",
			Status:        models.OrderStatusPending,
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		_, err := orders.Insert(context.Background(), order)
		require.NoError(mt, err)

		// Serve the persisted document back through the wire codec so the
		// fetch decodes exactly what Insert wrote.
		raw, err := bson.Marshal(order)
		require.NoError(mt, err)
		var doc bson.D
		require.NoError(mt, bson.Unmarshal(raw, &doc))
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "kashvi.orders", mtest.FirstBatch, doc))

		got, err := orders.FindByNumber(context.Background(), order.OrderNumber)
		require.NoError(mt, err)

		assert.Equal(mt, order.OrderNumber, got.OrderNumber)
		assert.Equal(mt, order.Items, got.Items)
		assert.Equal(mt, order.Pricing, got.Pricing)
		assert.Equal(mt, order.Customer, got.Customer)
		assert.Equal(mt, order.Address, got.Address)
		assert.Equal(mt, order.PaymentMethod, got.PaymentMethod)
		assert.Equal(mt, models.OrderStatusPending, got.Status)
		// The total is whatever the caller supplied, not a recomputation.
		assert.Equal(mt, 5350.0, got.Pricing.Total)
	})
}

func TestOrderSetStatusNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown order number", func(mt *mtest.T) {
		orders := &OrderStore{coll: mt.Coll}

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(0)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		err := orders.SetStatus(context.Background(), "KSH00000000000000-000000", models.OrderStatusShipped)
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
