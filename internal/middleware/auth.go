package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shashiranjanraj/kashvi-golang/internal/auth"
	"github.com/shashiranjanraj/kashvi-golang/internal/config"
)

// Context keys set by the auth middleware for downstream handlers.
const (
	CtxUserID = "userID"
	CtxEmail  = "userEmail"
	CtxRole   = "userRole"
)

// RequireAuth is the security guard for protected routes. It reads the
// session cookie, validates the token, and puts the identity on the context.
// Missing cookie and invalid/expired token both end the request with a 401.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.JWT.CookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		id, err := auth.ValidateToken(cfg.JWT, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, id.Subject)
		c.Set(CtxEmail, id.Email)
		c.Set(CtxRole, id.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. The role claim alone is not
// trusted: the token email must also match the configured administrator
// address (case-insensitive). Anything else is a 403.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.Identity{
			Subject: c.GetString(CtxUserID),
			Email:   c.GetString(CtxEmail),
			Role:    c.GetString(CtxRole),
		}

		if !id.IsAdmin(cfg.Admin.Email) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: administrator role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid session cookie is present
// and lets the request through either way. Order placement uses this so
// guest checkout works while logged-in customers keep ownership of their
// orders.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.JWT.CookieName)
		if err == nil && tokenString != "" {
			if id, err := auth.ValidateToken(cfg.JWT, tokenString); err == nil {
				c.Set(CtxUserID, id.Subject)
				c.Set(CtxEmail, id.Email)
				c.Set(CtxRole, id.Role)
			}
		}
		c.Next()
	}
}
