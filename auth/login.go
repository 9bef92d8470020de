package auth

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Kirtan82004/VisionCare/catalog"
	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/store"
)

type LoginInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/login
//
// Mock authentication: any well-formed email signs in. No passwords, no
// identity provider; the session token is the only artifact. An email that
// matches ADMIN_EMAIL gets the admin role.
func Login(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		role := models.RoleUser
		if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" &&
			strings.EqualFold(input.Email, adminEmail) {
			role = models.RoleAdmin
		}

		name := input.Name
		if name == "" {
			name = strings.Split(input.Email, "@")[0]
		}

		user := models.User{
			ID:    uuid.NewString(),
			Name:  name,
			Email: input.Email,
			Role:  role,
		}

		sessionID := "user_" + generateRandomString(16)
		s := manager.Get(sessionID)
		s.Dispatch(store.SetProducts{Products: catalog.FetchProducts()})
		s.Dispatch(store.SetUser{User: &user})

		token, err := IssueToken(sessionID, string(role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"user":       user,
			"expires_at": time.Now().Add(sessionTTL),
		})
	}
}

// POST /auth/logout  (JWT-protected)
//
// Clears the user from the session store. The session itself lives on as a
// guest session until its TTL lapses.
func Logout(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		s, ok := manager.Lookup(sessionID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		s.Dispatch(store.SetUser{User: nil})
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
