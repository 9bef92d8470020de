package adminController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/store"
)

func setupRouter(manager *store.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/stats", GetStats(manager))
	r.GET("/admin/appointments", GetAllAppointments(manager))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAllAppointmentsEmptyIsArray(t *testing.T) {
	r := setupRouter(store.NewManager(time.Hour))

	w := get(r, "/admin/appointments")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetAllAppointmentsSpansSessions(t *testing.T) {
	manager := store.NewManager(time.Hour)
	manager.Get("sess-a").Dispatch(store.AddAppointment{Appointment: models.Appointment{
		ID: "a1", Date: "2026-09-15", Time: "9:30 AM", Service: "Comprehensive Eye Exam",
		Status: models.AppointmentStatusPending,
	}})
	manager.Get("sess-b").Dispatch(store.AddAppointment{Appointment: models.Appointment{
		ID: "b1", Date: "2026-09-16", Time: "10:00 AM", Service: "Contact Lens Fitting",
		Status: models.AppointmentStatusConfirmed,
	}})
	r := setupRouter(manager)

	w := get(r, "/admin/appointments")
	require.Equal(t, http.StatusOK, w.Code)

	var all []struct {
		SessionID string `json:"session_id"`
		ID        string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 2)
}

func TestGetStatsCountsSessions(t *testing.T) {
	manager := store.NewManager(time.Hour)
	manager.Get("sess-a")
	manager.Get("sess-b")
	r := setupRouter(manager)

	w := get(r, "/admin/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sessions    int `json:"sessions"`
		ActiveCarts int `json:"active_carts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Sessions)
	assert.Equal(t, 0, resp.ActiveCarts)
}
