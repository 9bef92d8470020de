package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Kirtan82004/VisionCare/store"
)

// ExportAppointmentsToExcel writes every live session's appointments as an
// .xlsx download.
func ExportAppointmentsToExcel(manager *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Appointments")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"SessionID", "ID", "Date", "Time", "Service", "Status"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for id, s := range manager.All() {
			for _, appt := range s.State().Appointments {
				row := sheet.AddRow()
				row.AddCell().SetValue(id)
				row.AddCell().SetValue(appt.ID)
				row.AddCell().SetValue(appt.Date)
				row.AddCell().SetValue(appt.Time)
				row.AddCell().SetValue(appt.Service)
				row.AddCell().SetValue(string(appt.Status))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=appointments.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
