package productcontroller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Kirtan82004/VisionCare/catalog"
)

// ExportProductsToExcel writes the full catalog as an .xlsx download.
func ExportProductsToExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		products := catalog.FetchProducts()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Brand", "Category", "FrameShape", "Color",
			"Price", "OriginalPrice", "Rating", "Reviews", "Description",
			"Specifications", "IsNew", "IsBestseller",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(string(p.Category))
			row.AddCell().SetValue(p.FrameShape)
			row.AddCell().SetValue(p.Color)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.OriginalPrice.StringFixed(2))
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Reviews)
			row.AddCell().SetValue(p.Description)

			// Specifications in stable key order
			keys := make([]string, 0, len(p.Specifications))
			for k := range p.Specifications {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			specs := make([]string, 0, len(keys))
			for _, k := range keys {
				specs = append(specs, k+": "+p.Specifications[k])
			}
			row.AddCell().SetValue(strings.Join(specs, "; "))

			row.AddCell().SetValue(p.IsNew)
			row.AddCell().SetValue(p.IsBestseller)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
