package productcontroller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/store"
)

// GetProducts lists the session's loaded products with the storefront's
// filter and sort vocabulary.
// Query params: search, category, brand, color, shape, min_price, max_price,
// sort_by (price_asc | price_desc | rating | newest | featured).
func GetProducts(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := manager.Lookup(c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		// 1️⃣ Filtering & sorting params
		search := strings.ToLower(c.Query("search"))
		category := c.Query("category")
		brand := c.Query("brand")
		color := c.Query("color")
		shape := c.Query("shape")
		sortBy := c.DefaultQuery("sort_by", "featured")

		minPrice, err := parsePrice(c.Query("min_price"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		maxPrice, err := parsePrice(c.Query("max_price"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}

		all := s.State().Products

		// 2️⃣ Apply filters
		filtered := make([]models.Product, 0, len(all))
		for _, p := range all {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Brand), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			if category != "" && category != "all" && string(p.Category) != category {
				continue
			}
			if brand != "" && !strings.EqualFold(p.Brand, brand) {
				continue
			}
			if color != "" && !strings.EqualFold(p.Color, color) {
				continue
			}
			if shape != "" && !strings.EqualFold(p.FrameShape, shape) {
				continue
			}
			if minPrice != nil && p.Price.LessThan(*minPrice) {
				continue
			}
			if maxPrice != nil && p.Price.GreaterThan(*maxPrice) {
				continue
			}
			filtered = append(filtered, p)
		}

		// 3️⃣ Apply sort
		switch sortBy {
		case "price_asc":
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].Price.LessThan(filtered[j].Price)
			})
		case "price_desc":
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].Price.GreaterThan(filtered[j].Price)
			})
		case "rating":
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].Rating > filtered[j].Rating
			})
		case "newest":
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].IsNew && !filtered[j].IsNew
			})
		case "featured":
			// Catalog order is the featured order.
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": filtered,
			"total":    len(filtered),
		})
	}
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
