package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/config"
	"github.com/shashiranjanraj/kashvi-golang/internal/handlers"
)

// The router can be exercised without a database for everything that fails
// before a store call: health, CORS preflight, and the auth guards.
func newTestRouter() (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Expiry:     7 * 24 * time.Hour,
			CookieName: "kashvi_token",
		},
		Admin: config.AdminConfig{Email: "admin@kashvijewels.com"},
		CORS:  config.CORSConfig{AllowedOrigin: "http://localhost:5173"},
	}

	h := &handlers.Handlers{Config: cfg, Log: zap.NewNop()}
	return SetupRouter(h, cfg), cfg
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/products", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router, _ := newTestRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/products"},
		{http.MethodGet, "/admin/orders"},
		{http.MethodGet, "/admin/users"},
		{http.MethodGet, "/admin/dashboard"},
		{http.MethodGet, "/messages"},
	}

	for _, p := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestCustomerOrdersRequireAuth(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
