package appointmentControllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Kirtan82004/VisionCare/catalog"
	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/store"
)

// -------- Request Structs --------
type BookAppointmentInput struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to AppointmentStatus
func mapAppointmentStatus(status string) (models.AppointmentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.AppointmentStatusPending):
		return models.AppointmentStatusPending, nil
	case string(models.AppointmentStatusConfirmed):
		return models.AppointmentStatusConfirmed, nil
	case string(models.AppointmentStatusCancelled):
		return models.AppointmentStatusCancelled, nil
	default:
		return "", errors.New("invalid appointment status")
	}
}

// bookingDelay is the simulated confirmation round trip.
func bookingDelay() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("BOOKING_DELAY_MS"))
	if err != nil || ms < 0 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}

// -------- Handlers --------

// GET /user/appointments
func GetAppointments(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusOK, s.State().Appointments)
	}
}

// POST /user/appointments
//
// Books a slot. Date, time, and service are required; the slot label and
// service id must exist in the catalog. No double-booking check: two
// sessions can book the same slot.
func BookAppointment(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		var input BookAppointmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a date, service, and time slot"})
			return
		}

		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		if !catalog.ValidTimeSlot(input.Time) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
			return
		}
		service, err := catalog.FetchService(input.ServiceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Service does not exist"})
			return
		}

		// Simulated confirmation round trip; a dropped client aborts it.
		timer := time.NewTimer(bookingDelay())
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.Request.Context().Done():
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Booking was not confirmed"})
			return
		}

		appointment := models.Appointment{
			ID:      uuid.NewString(),
			Date:    input.Date,
			Time:    input.Time,
			Service: service.Name,
			Status:  models.AppointmentStatusPending,
		}
		s.Dispatch(store.AddAppointment{Appointment: appointment})

		c.JSON(http.StatusCreated, appointment)
	}
}

// PUT /user/appointments/:id/status
//
// Moves an appointment through its lifecycle. Transitions the appointment
// does not allow (anything out of cancelled, confirmed back to pending) are
// rejected, not silently dropped.
func UpdateAppointmentStatus(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		var input UpdateAppointmentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapAppointmentStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		appointmentID := c.Param("id")
		var current *models.Appointment
		for _, appt := range s.State().Appointments {
			if appt.ID == appointmentID {
				a := appt
				current = &a
				break
			}
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		if !current.CanTransition(status) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
			return
		}

		state := s.Dispatch(store.SetAppointmentStatus{
			AppointmentID: appointmentID,
			Status:        status,
		})

		for _, appt := range state.Appointments {
			if appt.ID == appointmentID {
				c.JSON(http.StatusOK, appt)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	}
}

// GET /services
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FetchServices())
}

// GET /time-slots
func GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FetchTimeSlots())
}
