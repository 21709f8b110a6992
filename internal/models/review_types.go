package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer product review. ProductName is snapshotted at write
// time so renaming a product does not rewrite its review history.
type Review struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID   string             `json:"productId" bson:"productId"`
	ProductName string             `json:"productName" bson:"productName"`
	Name        string             `json:"name" bson:"name"`
	Rating      float64            `json:"rating" bson:"rating"`
	Comment     string             `json:"comment" bson:"comment"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// RatingSummary is the aggregate computed on every read. There is no stored
// rolling aggregate; at expected scale the recomputation is fine.
type RatingSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"averageRating"`
}

// AggregateRatings computes the review count and mean rating rounded to one
// decimal place. Zero reviews yields 0/0, never a division error.
func AggregateRatings(reviews []Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := sum / float64(len(reviews))
	return RatingSummary{
		Count:   len(reviews),
		Average: math.Round(avg*10) / 10,
	}
}
