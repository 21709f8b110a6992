package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/auth"
	"github.com/shashiranjanraj/kashvi-golang/internal/middleware"
	"github.com/shashiranjanraj/kashvi-golang/internal/models"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

// invalidCredentialsMsg is returned for both "user not found" and "wrong
// password" so login responses cannot be used to enumerate accounts.
const invalidCredentialsMsg = "Invalid email or password"

// --- Registration ---

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register is the handler for POST /auth/register.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The administrator is configuration, not a user row; nobody gets to
	// register an account that shadows the admin login path.
	if strings.EqualFold(input.Email, h.Config.Admin.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Username:     input.Username,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Mobile:       input.Mobile,
		PasswordHash: password.Hash,
	}

	id, err := h.Store.Users.Insert(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
			return
		}
		h.Log.Error("register: insert user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	user.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user":    user,
	})
}

// --- Login ---

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /auth/login. The administrator credential
// pair is checked first; it is configuration, not a user row. Everything
// else goes through the stored password hash.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// 1. --- Administrator path ---
	if strings.EqualFold(email, h.Config.Admin.Email) {
		if input.Password != h.Config.Admin.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentialsMsg})
			return
		}

		token, err := auth.GenerateToken(h.Config.JWT, auth.Identity{
			Subject: h.Config.Admin.Email,
			Email:   h.Config.Admin.Email,
			Role:    auth.RoleAdmin,
		})
		if err != nil {
			h.Log.Error("login: admin token generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
			return
		}

		auth.SetSessionCookie(c, h.Config.JWT, token)
		c.JSON(http.StatusOK, gin.H{
			"message": "Signed in successfully",
			"role":    auth.RoleAdmin,
		})
		return
	}

	// 2. --- Customer path ---
	user, err := h.Store.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same response as a wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentialsMsg})
			return
		}
		h.Log.Error("login: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		h.Log.Error("login: password comparison failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentialsMsg})
		return
	}

	if user.IsBlocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account has been blocked. Please contact support."})
		return
	}

	token, err := auth.GenerateToken(h.Config.JWT, auth.Identity{
		Subject: user.ID.Hex(),
		Email:   user.Email,
		Role:    auth.RoleCustomer,
	})
	if err != nil {
		h.Log.Error("login: token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	auth.SetSessionCookie(c, h.Config.JWT, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"role":    auth.RoleCustomer,
		"user":    user,
	})
}

// Logout clears the session cookie.
func (h *Handlers) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.Config.JWT)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// Me returns the current customer's profile.
func (h *Handlers) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	if c.GetString(middleware.CtxRole) == auth.RoleAdmin {
		// The admin has no stored profile row.
		c.JSON(http.StatusOK, gin.H{
			"role":  auth.RoleAdmin,
			"email": h.Config.Admin.Email,
		})
		return
	}

	user, err := h.Store.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		h.Log.Error("me: lookup failed", zap.Error(err), zap.String("userId", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// --- Change password ---

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ChangePassword rotates the customer's password after verifying the
// current one.
func (h *Handlers) ChangePassword(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		h.Log.Error("change-password: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	current := models.Password{Hash: user.PasswordHash}
	match, err := current.Matches(input.CurrentPassword)
	if err != nil {
		h.Log.Error("change-password: comparison failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	var replacement models.Password
	if err := replacement.Set(input.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := h.Store.Users.UpdatePassword(c.Request.Context(), userID, replacement.Hash); err != nil {
		h.Log.Error("change-password: update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	h.Log.Info("password changed", zap.String("userId", userID), zap.Time("at", time.Now()))
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
