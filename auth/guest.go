package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/catalog"
	"github.com/Kirtan82004/VisionCare/store"
)

// POST /auth/guest
func CreateGuestSession(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "guest_" + generateRandomString(16)

		// A fresh session starts with the catalog loaded, the way the
		// storefront loads products on first render.
		s := manager.Get(sessionID)
		s.Dispatch(store.SetProducts{Products: catalog.FetchProducts()})

		token, err := IssueToken(sessionID, "guest")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": time.Now().Add(sessionTTL),
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
