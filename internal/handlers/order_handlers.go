package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/auth"
	"github.com/shashiranjanraj/kashvi-golang/internal/middleware"
	"github.com/shashiranjanraj/kashvi-golang/internal/models"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

//
// --- Checkout & Customer Orders ---
//

type OrderItemInput struct {
	ProductID  string  `json:"productId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      string  `json:"price"`
	PriceValue float64 `json:"priceValue" binding:"gte=0"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity" binding:"required,gte=1"`
	Category   string  `json:"category"`
}

type CreateOrderInput struct {
	Customer struct {
		Name   string `json:"name" binding:"required"`
		Email  string `json:"email" binding:"required,email"`
		Mobile string `json:"mobile" binding:"required"`
	} `json:"customer" binding:"required"`
	Address struct {
		Line1   string `json:"line1" binding:"required"`
		Line2   string `json:"line2"`
		City    string `json:"city" binding:"required"`
		State   string `json:"state" binding:"required"`
		Pincode string `json:"pincode" binding:"required"`
		Country string `json:"country" binding:"required"`
	} `json:"address" binding:"required"`
	Items         []OrderItemInput    `json:"items" binding:"required,min=1"`
	Pricing       models.OrderPricing `json:"pricing" binding:"required"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
}

// CreateOrder is the handler for POST /orders. Items and pricing are
// persisted exactly as submitted, without recomputation against the catalog.
// A valid session cookie attaches the order to the customer; guests order
// without one.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := &models.Order{
		OrderNumber: models.NewOrderNumber(),
		Customer: models.OrderCustomer{
			Name:   input.Customer.Name,
			Email:  input.Customer.Email,
			Mobile: input.Customer.Mobile,
		},
		Address: models.ShippingAddress{
			Line1:   input.Address.Line1,
			Line2:   input.Address.Line2,
			City:    input.Address.City,
			State:   input.Address.State,
			Pincode: input.Address.Pincode,
			Country: input.Address.Country,
		},
		Pricing:       input.Pricing,
		PaymentMethod: input.PaymentMethod,
		Status:        models.OrderStatusPending,
	}

	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Price:      item.Price,
			PriceValue: item.PriceValue,
			Image:      item.Image,
			Quantity:   item.Quantity,
			Category:   item.Category,
		})
	}

	// Attach the owner when the optional session identified a customer.
	if userID := c.GetString(middleware.CtxUserID); userID != "" &&
		c.GetString(middleware.CtxRole) == auth.RoleCustomer {
		if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
			order.UserID = &oid
		}
	}

	if _, err := h.Store.Orders.Insert(c.Request.Context(), order); err != nil {
		h.Log.Error("orders: insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	h.Log.Info("order placed",
		zap.String("orderNumber", order.OrderNumber),
		zap.Float64("total", order.Pricing.Total),
	)
	// The confirmation view renders from this response; guests have no
	// authenticated read path for a later fetch.
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order placed successfully",
		"orderNumber": order.OrderNumber,
		"order":       order,
	})
}

// GetMyOrders is the handler for GET /orders: the signed-in customer's own
// orders, newest first.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	orders, err := h.Store.Orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"orders": []models.Order{}})
			return
		}
		h.Log.Error("orders: list by user failed", zap.Error(err), zap.String("userId", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder is the handler for GET /orders/:id (id = order number). A
// customer may only read their own order; the admin may read any.
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.Store.Orders.FindByNumber(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.Log.Error("orders: get failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	if c.GetString(middleware.CtxRole) != auth.RoleAdmin {
		owner := order.UserID != nil && order.UserID.Hex() == c.GetString(middleware.CtxUserID)
		if !owner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
