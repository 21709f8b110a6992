package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shashiranjanraj/kashvi-golang/internal/config"
	"github.com/shashiranjanraj/kashvi-golang/internal/handlers"
	"github.com/shashiranjanraj/kashvi-golang/internal/middleware"
)

// CORSMiddleware tells the browser that the configured frontend origin may
// send credentialed requests to us.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(cfg.CORS.AllowedOrigin))

	// Uploaded product images are served straight from disk.
	router.Static("/uploads", cfg.Upload.Dir)

	// --- Ping Route (Public) ---
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Auth Routes ---
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)

		authGroup.GET("/me", middleware.RequireAuth(cfg), h.Me)
		authGroup.POST("/change-password", middleware.RequireAuth(cfg), h.ChangePassword)
	}

	// --- Storefront Catalog (Public) ---
	router.GET("/products", h.GetProducts)
	router.GET("/products/:id", h.GetProduct)
	router.GET("/products/:id/reviews", h.GetProductReviews)
	router.POST("/reviews", h.CreateReview)

	// --- Contact Form (Public) ---
	router.POST("/messages", h.CreateMessage)

	// --- Orders ---
	// Checkout works for guests; a valid cookie attaches ownership.
	router.POST("/orders", middleware.OptionalAuth(cfg), h.CreateOrder)

	orders := router.Group("/orders")
	orders.Use(middleware.RequireAuth(cfg))
	{
		orders.GET("", h.GetMyOrders)
		orders.GET("/:id", h.GetOrder)
	}

	// --- Admin Back Office ---
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(cfg))
	admin.Use(middleware.RequireAdmin(cfg))
	{
		admin.GET("/dashboard", h.GetDashboardStats)
		admin.POST("/upload", h.UploadFile)

		admin.GET("/products", h.GetAdminProducts)
		admin.POST("/products", h.CreateProduct)
		admin.GET("/products/:id", h.GetAdminProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/orders", h.GetAdminOrders)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)

		admin.GET("/users", h.GetAdminUsers)
		admin.PATCH("/users/:id/block", h.BlockUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.DELETE("/reviews/:id", h.DeleteReview)
	}

	// --- Admin Inbox ---
	inbox := router.Group("/messages")
	inbox.Use(middleware.RequireAuth(cfg))
	inbox.Use(middleware.RequireAdmin(cfg))
	{
		inbox.GET("", h.GetMessages)
		inbox.PATCH("/:id/status", h.UpdateMessageStatus)
		inbox.DELETE("/:id", h.DeleteMessage)
	}

	return router
}
