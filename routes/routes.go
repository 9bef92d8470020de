package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/checkout"
	"github.com/Kirtan82004/VisionCare/store"
)

// SetupRoutes is the single entry‐point that wires up Auth, User, Admin, and
// Chat route groups.
func SetupRoutes(r *gin.Engine, manager *store.Manager, registry *checkout.Registry) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, manager)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, manager, registry)

	// 3️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, manager)

	// chat routes (public, the widget is shown to everyone)
	SetupChatRoutes(r)
}
