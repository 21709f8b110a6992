package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/kashvi-golang/internal/config"
)

// Roles carried in the identity token. There are exactly two; resource-level
// permissions do not exist in this system.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the decoded content of a session token.
type Identity struct {
	Subject string // user id for customers, the admin email for the admin
	Email   string
	Role    string
}

// GenerateToken creates a signed session token for the given identity.
func GenerateToken(cfg config.JWTConfig, id Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id.Subject,
		"email": id.Email,
		"role":  id.Role,
		"exp":   time.Now().Add(cfg.Expiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken parses and verifies a session token string and returns the
// identity it carries. Expired or tampered tokens fail verification.
func ValidateToken(cfg config.JWTConfig, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	id := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		id.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = role
	}
	if id.Subject == "" || id.Role == "" {
		return Identity{}, ErrInvalidToken
	}

	return id, nil
}

// IsAdmin reports whether the identity passes the back-office guard.
// The role alone is not trusted: the token email must also match the
// configured administrator address, compared case-insensitively.
func (id Identity) IsAdmin(adminEmail string) bool {
	return id.Role == RoleAdmin && strings.EqualFold(id.Email, adminEmail)
}

// SetSessionCookie writes the token as the HTTP-only, SameSite-Strict
// session cookie with the configured expiry.
func SetSessionCookie(c *gin.Context, cfg config.JWTConfig, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cfg.CookieName, token, int(cfg.Expiry.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, cfg config.JWTConfig) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", false, true)
}
