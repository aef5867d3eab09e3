// upkraft-crm/internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"upkraft-crm/config"
	"upkraft-crm/internal/revenue"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
)

// ExportRevenueReportHandler выгружает отчет по выручке за выбранный период в Excel.
func ExportRevenueReportHandler(c *gin.Context) {
	id := academyID(c)
	sel := revenue.Selector(c.DefaultQuery("period", string(revenue.SelectorMonth)))

	var custom *revenue.CustomRange
	if startStr, endStr := c.Query("startDate"), c.Query("endDate"); startStr != "" && endStr != "" {
		start, errS := parseDateParam(startStr)
		end, errE := parseDateParam(endStr)
		if errS == nil && errE == nil {
			custom = &revenue.CustomRange{StartDate: start, EndDate: end}
		}
	}
	sel = revenue.Normalize(sel, custom)

	var records []models.TransactionRecord
	if err := config.DB.
		Preload("Student").Preload("Tutor").Preload("Course").
		Where("academy_id = ?", id).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for export"})
		return
	}

	txns := toEngineTransactions(records)
	report := revenue.BuildReport(txns, sel, custom, time.Now().UTC(), rosterLookup(id))
	current, _ := revenue.Resolve(report.Period, custom, time.Now().UTC())

	f := buildRevenueWorkbook(report, txns, current)

	fileName := fmt.Sprintf("revenue_report_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
