package checkoutControllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/checkout"
	"github.com/Kirtan82004/VisionCare/store"
)

type StartCheckoutInput struct {
	UseInsurance bool `json:"use_insurance"`
}

type InsuranceInput struct {
	UseInsurance bool `json:"use_insurance"`
}

// processingDelay is the simulated payment round trip.
func processingDelay() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("CHECKOUT_DELAY_MS"))
	if err != nil || ms < 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}

func sessionView(s *checkout.Session) gin.H {
	return gin.H{
		"steps":         s.Steps(),
		"current":       s.Current(),
		"use_insurance": s.Insurance(),
		"breakdown":     s.Quote().Round(),
	}
}

// POST /user/checkout/start
//
// Opens a checkout over the current cart. The step sequence is decided here
// from the cart contents and does not change mid-flow; starting again
// abandons any prior walk.
func StartCheckout(manager *store.Manager, registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		s, ok := manager.Lookup(sessionID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		// Body is optional; a missing one means no insurance.
		var input StartCheckoutInput
		_ = c.ShouldBindJSON(&input)

		sess, err := checkout.NewSession(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		sess.SetInsurance(input.UseInsurance)
		registry.Put(sessionID, sess)

		c.JSON(http.StatusCreated, sessionView(sess))
	}
}

// GET /user/checkout
func GetCheckout(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := registry.Get(c.GetString("session_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout"})
			return
		}
		c.JSON(http.StatusOK, sessionView(sess))
	}
}

// POST /user/checkout/next
func NextStep(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := registry.Get(c.GetString("session_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout"})
			return
		}
		sess.Next()
		c.JSON(http.StatusOK, sessionView(sess))
	}
}

// POST /user/checkout/back
func PreviousStep(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := registry.Get(c.GetString("session_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout"})
			return
		}
		sess.Back()
		c.JSON(http.StatusOK, sessionView(sess))
	}
}

// PUT /user/checkout/insurance
func SetInsurance(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := registry.Get(c.GetString("session_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout"})
			return
		}

		var input InsuranceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.SetInsurance(input.UseInsurance)
		c.JSON(http.StatusOK, sessionView(sess))
	}
}

// POST /user/checkout/place-order
//
// The terminal step: only legal from review. On success the cart is empty
// and the checkout is over; the confirmation is the response body.
func PlaceOrder(registry *checkout.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		sess, err := registry.Get(sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout"})
			return
		}

		order, err := sess.PlaceOrder(c.Request.Context(), processingDelay())
		switch {
		case err == nil:
		case errors.Is(err, checkout.ErrNotAtReview):
			c.JSON(http.StatusConflict, gin.H{"error": "Complete the previous steps first"})
			return
		case errors.Is(err, checkout.ErrAlreadyPlaced):
			c.JSON(http.StatusConflict, gin.H{"error": "Order already placed"})
			return
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		default:
			// Context cancelled or timed out mid-processing
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Order processing was interrupted"})
			return
		}

		registry.Drop(sessionID)
		c.JSON(http.StatusCreated, order)
	}
}
