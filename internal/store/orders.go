package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
)

// OrderStore handles the orders collection. Orders are written once at
// checkout; afterwards only the status field is ever mutated.
type OrderStore struct {
	coll *mongo.Collection
}

// OrderFilter narrows List. Empty fields mean "no filter".
type OrderFilter struct {
	Status string
	Page   int
	Limit  int
}

// Insert persists a new order exactly as snapshotted by the checkout handler.
func (s *OrderStore) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByNumber returns the order with the given order number or ErrNotFound.
// Lookup is by the human-readable number, not the Mongo _id, since that is
// what the confirmation page and support staff hold.
func (s *OrderStore) FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := s.coll.FindOne(ctx, bson.M{"orderNumber": orderNumber}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser returns all orders owned by a user, newest first.
func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// List returns a page of orders, newest first, plus the total count for the
// applied filter.
func (s *OrderStore) List(ctx context.Context, filter OrderFilter) ([]models.Order, int64, error) {
	page, limit := NormalizePage(filter.Page, filter.Limit)

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// SetStatus sets the order status unconditionally. This is the single place
// the status field is mutated; a transition table would slot in here.
func (s *OrderStore) SetStatus(ctx context.Context, orderNumber, status string) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"orderNumber": orderNumber},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns counts of all orders and of those still pending.
func (s *OrderStore) Count(ctx context.Context) (total int64, pending int64, err error) {
	total, err = s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	pending, err = s.coll.CountDocuments(ctx, bson.M{"status": models.OrderStatusPending})
	if err != nil {
		return 0, 0, err
	}
	return total, pending, nil
}

// Revenue sums the supplied order totals across all non-cancelled orders
// with an aggregation pipeline.
func (s *OrderStore) Revenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": models.OrderStatusCancelled}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$pricing.total"},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
