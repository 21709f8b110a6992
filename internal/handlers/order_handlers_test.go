package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/config"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

const checkoutBody = `{
	"customer": {"name": "Priya Sharma", "email": "priya@example.com", "mobile": "9876543210"},
	"address": {"line1": "12 MG Road", "city": "Pune", "state": "Maharashtra", "pincode": "411001", "country": "India"},
	"items": [{"productId": "64f1b2a3c4d5e6f7a8b9c0d1", "name": "Kundan Choker", "priceValue": 5000, "quantity": 1, "category": "necklace"}],
	"pricing": {"subtotal": 5000, "shipping": 100, "tax": 250, "total": 5350},
	"paymentMethod": "cod"
}`

func TestCreateOrderResponseCarriesSnapshot(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("guest checkout", func(mt *mtest.T) {
		gin.SetMode(gin.TestMode)

		h := &Handlers{
			Store:  store.New(mt.Client, "kashvi"),
			Config: &config.Config{},
			Log:    zap.NewNop(),
		}
		router := gin.New()
		router.POST("/orders", h.CreateOrder)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(checkoutBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(mt, http.StatusCreated, w.Code)
		body := w.Body.String()
		// The confirmation view renders from this response alone: the order
		// number plus the full snapshot, pricing exactly as submitted.
		assert.Contains(mt, body, `"orderNumber":"KSH`)
		assert.Contains(mt, body, `"total":5350`)
		assert.Contains(mt, body, `"name":"Kundan Choker"`)
		assert.Contains(mt, body, `"status":"pending"`)
	})
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := &Handlers{Config: &config.Config{}, Log: zap.NewNop()}
	router := gin.New()
	router.POST("/orders", h.CreateOrder)

	payload := `{
		"customer": {"name": "Priya Sharma", "email": "priya@example.com", "mobile": "9876543210"},
		"address": {"line1": "12 MG Road", "city": "Pune", "state": "Maharashtra", "pincode": "411001", "country": "India"},
		"items": [],
		"pricing": {"subtotal": 0, "shipping": 0, "tax": 0, "total": 0},
		"paymentMethod": "cod"
	}`

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
