package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/pricing"
	"github.com/Kirtan82004/VisionCare/store"
)

// GET /admin/stats
//
// Aggregates across every live session: how many sessions, how many carts
// hold items and what they are worth, and appointments by status.
func GetStats(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions := manager.All()

		activeCarts := 0
		cartValue := decimal.Zero
		signedIn := 0
		appointmentsByStatus := map[models.AppointmentStatus]int{
			models.AppointmentStatusPending:   0,
			models.AppointmentStatusConfirmed: 0,
			models.AppointmentStatusCancelled: 0,
		}

		for _, s := range sessions {
			state := s.State()
			if len(state.Cart) > 0 {
				activeCarts++
				cartValue = cartValue.Add(pricing.Subtotal(state.Cart))
			}
			if state.User != nil {
				signedIn++
			}
			for _, appt := range state.Appointments {
				appointmentsByStatus[appt.Status]++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"sessions":               len(sessions),
			"signed_in":              signedIn,
			"active_carts":           activeCarts,
			"cart_value":             cartValue.Round(2),
			"appointments_by_status": appointmentsByStatus,
		})
	}
}

// GET /admin/appointments
func GetAllAppointments(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		type sessionAppointment struct {
			SessionID string `json:"session_id"`
			models.Appointment
		}

		all := []sessionAppointment{}
		for id, s := range manager.All() {
			for _, appt := range s.State().Appointments {
				all = append(all, sessionAppointment{SessionID: id, Appointment: appt})
			}
		}

		c.JSON(http.StatusOK, all)
	}
}
