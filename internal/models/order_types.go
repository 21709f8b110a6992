package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Transitions are not enforced; the admin may set any
// value. All status writes go through OrderStore.SetStatus.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a line item snapshotted at checkout. Price is the display
// string shown in the cart; PriceValue is the numeric unit price.
type OrderItem struct {
	ProductID  string  `json:"productId" bson:"productId"`
	Name       string  `json:"name" bson:"name"`
	Price      string  `json:"price" bson:"price"`
	PriceValue float64 `json:"priceValue" bson:"priceValue"`
	Image      string  `json:"image" bson:"image"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	Category   string  `json:"category" bson:"category"`
}

// OrderCustomer is the contact snapshot embedded in the order.
type OrderCustomer struct {
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
	Mobile string `json:"mobile" bson:"mobile"`
}

// ShippingAddress is the address snapshot embedded in the order.
type ShippingAddress struct {
	Line1   string `json:"line1" bson:"line1"`
	Line2   string `json:"line2,omitempty" bson:"line2,omitempty"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
	Country string `json:"country" bson:"country"`
}

// OrderPricing is the checkout pricing breakdown, persisted exactly as
// supplied by the caller. The server does not recompute or verify totals
// against the catalog.
type OrderPricing struct {
	Subtotal float64 `json:"subtotal" bson:"subtotal"`
	Shipping float64 `json:"shipping" bson:"shipping"`
	Tax      float64 `json:"tax" bson:"tax"`
	Total    float64 `json:"total" bson:"total"`
}

// Order is the persisted order document. OrderNumber is globally unique and
// immutable once created; everything snapshotted here stays as it was at
// checkout regardless of later product or user edits.
type Order struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrderNumber   string              `json:"orderNumber" bson:"orderNumber"`
	UserID        *primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	Customer      OrderCustomer       `json:"customer" bson:"customer"`
	Address       ShippingAddress     `json:"address" bson:"address"`
	Items         []OrderItem         `json:"items" bson:"items"`
	Pricing       OrderPricing        `json:"pricing" bson:"pricing"`
	PaymentMethod string              `json:"paymentMethod" bson:"paymentMethod"`
	Status        string              `json:"status" bson:"status"`
	CreatedAt     time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// IsValidOrderStatus reports whether s is one of the six enum values.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// NewOrderNumber generates a human-readable order identifier:
// "KSH" + UTC timestamp + 6-char random suffix, e.g. KSH20260828154210-3F92A1.
// Global uniqueness is the only hard requirement; the timestamp keeps the
// numbers sortable for support staff, the uuid suffix breaks same-second ties.
func NewOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("KSH%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}
