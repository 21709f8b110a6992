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

// ProductStore handles the products collection.
type ProductStore struct {
	coll *mongo.Collection
}

// ProductFilter narrows List. Empty fields mean "no filter".
type ProductFilter struct {
	Category string
	Page     int
	Limit    int
}

// Insert creates a product. The in-stock flag is derived from the stock
// count here so no write path can skip it.
func (s *ProductStore) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.InStock = models.ComputeInStock(product.Stock)

	res, err := s.coll.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByID returns the product with the given hex id or ErrNotFound.
func (s *ProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var product models.Product
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List returns a page of products, newest first, plus the total count for
// the applied filter.
func (s *ProductStore) List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	page, limit := NormalizePage(filter.Page, filter.Limit)

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
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

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update merges a partial set of fields onto the stored product. When the
// stock count is among the updates the in-stock flag is recomputed in the
// same write, and updatedAt is always refreshed.
func (s *ProductStore) Update(ctx context.Context, id string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	if stock, ok := updates["stock"]; ok {
		if n, ok := stock.(int); ok {
			updates["inStock"] = models.ComputeInStock(n)
		}
	}
	updates["updatedAt"] = time.Now().UTC()

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product. Deleting twice yields ErrNotFound the second time.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
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

// Count returns the total number of catalog products.
func (s *ProductStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
