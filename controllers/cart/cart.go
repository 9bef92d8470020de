package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/catalog"
	"github.com/Kirtan82004/VisionCare/pricing"
	"github.com/Kirtan82004/VisionCare/store"
)

type AddCartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateCartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GET /user/cart
//
// Returns the cart lines plus a priced breakdown. An optional ?promo=CODE
// applies the promo discount; an unrecognized code is a 400, cart unchanged.
func GetUserCart(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		state := s.State()
		promo := c.Query("promo")

		quote, err := pricing.CartQuote(state.Cart, promo)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidPromo) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please check your promo code and try again"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":     state.Cart,
			"breakdown": quote.Round(),
		})
	}
}

// POST /user/cart
//
// Adds one unit of a product. A line that already exists for the product id
// gains a unit; otherwise a new line is appended.
func AddCartItem(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := catalog.FetchProduct(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		state := s.Dispatch(store.AddToCart{Product: product})
		c.JSON(http.StatusCreated, state.Cart)
	}
}

// PUT /user/cart
//
// Sets a line's quantity verbatim. Zero or less removes the line; the
// reducer owns that rule, this handler just relays it.
func UpdateCartItem(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		state := s.Dispatch(store.UpdateCartQuantity{
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		})
		c.JSON(http.StatusOK, state.Cart)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		productID := c.Param("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		state := s.Dispatch(store.RemoveFromCart{ProductID: productID})
		c.JSON(http.StatusOK, state.Cart)
	}
}

// DELETE /user/cart
func ClearUserCart(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		state := s.Dispatch(store.ClearCart{})
		c.JSON(http.StatusOK, state.Cart)
	}
}
