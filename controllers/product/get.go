package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/store"
)

// GetProductByID returns a single product from the session's loaded listing.
// URL param: /products/:id
func GetProductByID(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		for _, product := range s.State().Products {
			if product.ID == idParam {
				c.JSON(http.StatusOK, product)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	}
}
