package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidOrderStatus(t *testing.T) {
	valid := []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, IsValidOrderStatus(s), s)
	}

	assert.False(t, IsValidOrderStatus(""))
	assert.False(t, IsValidOrderStatus("refunded"))
	assert.False(t, IsValidOrderStatus("Pending"))
}

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^KSH\d{14}-[0-9A-F]{6}$`)

	number := NewOrderNumber()
	require.Regexp(t, pattern, number)
}

func TestNewOrderNumberUniqueness(t *testing.T) {
	// Same-second collisions are what the random suffix exists for.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := NewOrderNumber()
		require.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}

func TestOrderPricingIsSnapshotted(t *testing.T) {
	// The pricing breakdown is stored exactly as supplied; nothing recomputes
	// total from subtotal + shipping + tax.
	pricing := OrderPricing{Subtotal: 5000, Shipping: 100, Tax: 250, Total: 5350}

	order := Order{
		OrderNumber: NewOrderNumber(),
		Pricing:     pricing,
		Status:      OrderStatusPending,
	}

	assert.Equal(t, pricing, order.Pricing)
	assert.Equal(t, 5350.0, order.Pricing.Total)
}
