package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/Kirtan82004/VisionCare/controllers/admin"
	productcontroller "github.com/Kirtan82004/VisionCare/controllers/product"
	"github.com/Kirtan82004/VisionCare/middleware"
	"github.com/Kirtan82004/VisionCare/store"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, manager *store.Manager) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetStats(manager))

		// ─────────── Appointments ───────────
		appointmentAdmin := adminGroup.Group("/appointments")
		{
			appointmentAdmin.GET("", adminController.GetAllAppointments(manager))
			appointmentAdmin.GET("/export-excel", adminController.ExportAppointmentsToExcel(manager))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel())
		}
	}
}
