package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/catalog"
	"github.com/Kirtan82004/VisionCare/store"
)

type AddWishlistItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		state := s.State()
		c.JSON(http.StatusOK, gin.H{
			"items": state.Wishlist,
			"count": len(state.Wishlist),
		})
	}
}

// POST /user/wishlist
//
// Saves a product for later. Saving a product that is already on the
// wishlist leaves it where it is.
func AddWishlistItem(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		var input AddWishlistItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := catalog.FetchProduct(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		state := s.Dispatch(store.AddToWishlist{Product: product})
		c.JSON(http.StatusCreated, state.Wishlist)
	}
}

// DELETE /user/wishlist/:product_id
func DeleteWishlistItem(manager *store.Manager) gin.HandlerFunc {
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

		state := s.Dispatch(store.RemoveFromWishlist{ProductID: productID})
		c.JSON(http.StatusOK, state.Wishlist)
	}
}

// POST /user/wishlist/:product_id/cart
//
// Adds a saved product to the cart. The product stays on the wishlist, so
// a shopper can gift the same frame twice.
func AddWishlistItemToCart(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		productID := c.Param("product_id")
		state := s.State()
		for _, p := range state.Wishlist {
			if p.ID == productID {
				next := s.Dispatch(store.AddToCart{Product: p})
				c.JSON(http.StatusCreated, gin.H{
					"cart":     next.Cart,
					"wishlist": next.Wishlist,
				})
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "Product is not on the wishlist"})
	}
}

// POST /user/wishlist/cart
//
// Adds every saved product to the cart in one go.
func AddAllWishlistItemsToCart(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		state := s.State()
		for _, p := range state.Wishlist {
			state = s.Dispatch(store.AddToCart{Product: p})
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":  state.Cart,
			"added": len(state.Wishlist),
		})
	}
}
