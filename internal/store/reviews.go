package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kashvi-golang/internal/models"
)

// ReviewStore handles the reviews collection.
type ReviewStore struct {
	coll *mongo.Collection
}

// Insert persists a new review.
func (s *ReviewStore) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.CreatedAt = time.Now().UTC()

	res, err := s.coll.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// ListByProduct returns all reviews for a product, newest first.
func (s *ReviewStore) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"productId": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Delete removes a review. Deleting twice yields ErrNotFound the second time.
func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
