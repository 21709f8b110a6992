package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Pagination defaults. List endpoints sort newest-first and page with these
// fixed constants unless the caller supplies its own page/limit.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrNotFound is returned by every Get/Update/Delete when no document
// matches. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

// Store bundles the per-resource data access over one shared Mongo client.
// Created once at startup and injected into the handler set.
type Store struct {
	Users    *UserStore
	Products *ProductStore
	Orders   *OrderStore
	Reviews  *ReviewStore
	Messages *MessageStore
}

// New wires the resource stores to their collections in the given database.
func New(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		Users:    &UserStore{coll: db.Collection("users")},
		Products: &ProductStore{coll: db.Collection("products")},
		Orders:   &OrderStore{coll: db.Collection("orders")},
		Reviews:  &ReviewStore{coll: db.Collection("reviews")},
		Messages: &MessageStore{coll: db.Collection("messages")},
	}
}

// NormalizePage clamps page/limit to sane values: page >= 1,
// 1 <= limit <= MaxPageSize, defaulting limit to DefaultPageSize.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
