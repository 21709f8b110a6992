package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message statuses for the contact inbox.
const (
	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

// Message is a contact-form inquiry.
type Message struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Mobile    string             `json:"mobile" bson:"mobile"`
	Message   string             `json:"message" bson:"message"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// IsValidMessageStatus reports whether s is a known inbox status.
func IsValidMessageStatus(s string) bool {
	return s == MessageStatusUnread || s == MessageStatusRead
}
