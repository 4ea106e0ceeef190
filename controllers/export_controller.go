package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karigarstudio/karigar-studio-api/services"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

// ExportController pushes the order book to a Google Sheet.
type ExportController struct {
	orders   stores.OrderStore
	exporter services.OrderExporter
}

func NewExportController(orders stores.OrderStore, exporter services.OrderExporter) *ExportController {
	return &ExportController{orders: orders, exporter: exporter}
}

// ExportSheets handles POST /api/v1/export/sheets - rewrites the configured
// spreadsheet with the current order book.
func (ctl *ExportController) ExportSheets(c *gin.Context) {
	if ctl.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_UNAVAILABLE",
				"message": "Google Sheets export is not configured",
			},
		})
		return
	}

	orders, err := ctl.orders.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	count, err := ctl.exporter.ExportOrders(c.Request.Context(), orders)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_FAILED",
				"message": "Failed to export orders to Google Sheets",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"exportedOrders": count,
		},
	})
}
