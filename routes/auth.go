package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/auth"
	"github.com/Kirtan82004/VisionCare/middleware"
	"github.com/Kirtan82004/VisionCare/store"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, manager *store.Manager) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(manager))

		// Mock sign-in; register and login behave identically today
		authGroup.POST("/login", auth.Login(manager))
		authGroup.POST("/register", auth.Login(manager))

		authGroup.POST("/logout", middleware.ValidateToken, auth.Logout(manager))
	}
}
