package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tonycharles1/Trackz/internal/auth"
	"github.com/tonycharles1/Trackz/internal/models"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// RegisterInput is the payload for POST /v1/auth/register. The username
// is derived from the name parts (first_last, lowercased), matching the
// accounts already stored in the Users tab.
type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// Register creates a new account with the default `user` role.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.store(c)
	if store == nil {
		return
	}

	username := strings.ToLower(strings.ReplaceAll(input.FirstName+"_"+input.LastName, " ", ""))

	// Uniqueness check on username and email.
	users, err := store.List(sheetstore.TabUsers)
	if err != nil {
		h.storeError(c, err)
		return
	}
	for _, rec := range users {
		if rec["Username"] == username || rec["Email"] == input.Email {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
			return
		}
	}

	user := models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: auth.HashPassword(input.Password),
		Role:         models.RoleUser,
	}
	if err := store.Insert(sheetstore.TabUsers, user.ToRecord()); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful, please log in.",
		"user":    user,
	})
}

// LoginInput is the payload for POST /v1/auth/login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the password digest and issues a session token carrying
// the username and role.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.store(c)
	if store == nil {
		return
	}

	rec, err := store.Find(sheetstore.TabUsers, "Username", input.Username)
	if errors.Is(err, sheetstore.ErrNotFound) {
		// Same response for unknown user and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	user := models.UserFromRecord(rec)
	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	token, err := auth.GenerateToken(h.Cfg.JWTSecret, user.Username, role, h.Cfg.JWTExpiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"username": user.Username,
			"role":     role,
		},
	})
}
