package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/store"
)

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// GET /user
//
// Returns the signed-in user plus their appointments, the profile page's
// view of the session.
func GetUser(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		state := s.State()
		if state.User == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not signed in"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":         state.User,
			"appointments": state.Appointments,
		})
	}
}

// PUT /user
func UpdateUser(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		state := s.State()
		if state.User == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not signed in"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := *state.User
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Email != nil {
			user.Email = *input.Email
		}

		next := s.Dispatch(store.SetUser{User: &user})
		c.JSON(http.StatusOK, next.User)
	}
}
