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

// MessageStore handles the contact-inbox collection.
type MessageStore struct {
	coll *mongo.Collection
}

// Insert persists a new inquiry with status unread.
func (s *MessageStore) Insert(ctx context.Context, msg *models.Message) (primitive.ObjectID, error) {
	msg.Status = models.MessageStatusUnread
	msg.CreatedAt = time.Now().UTC()

	res, err := s.coll.InsertOne(ctx, msg)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// List returns all messages, newest first, optionally filtered by status.
func (s *MessageStore) List(ctx context.Context, status string) ([]models.Message, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SetStatus marks a message read or unread.
func (s *MessageStore) SetStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a message. Deleting twice yields ErrNotFound the second time.
func (s *MessageStore) Delete(ctx context.Context, id string) error {
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

// CountUnread returns the number of unread inquiries.
func (s *MessageStore) CountUnread(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"status": models.MessageStatusUnread})
}
