// upkraft-crm/internal/handlers/revenue_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"upkraft-crm/config"
	"upkraft-crm/internal/revenue"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
)

// revenueReportResponse wraps the engine report with ready-to-render INR
// strings so the dashboard cards do not re-implement en-IN compaction.
type revenueReportResponse struct {
	revenue.Report
	Display map[string]string `json:"display"`
}

// GetRevenueReportHandler builds the revenue dashboard payload for the
// requested period. Results are cached in Redis per academy and period
// selection; transaction writes invalidate the cache.
func GetRevenueReportHandler(c *gin.Context) {
	id := academyID(c)
	sel := revenue.Selector(c.DefaultQuery("period", string(revenue.SelectorMonth)))

	var custom *revenue.CustomRange
	startStr, endStr := c.Query("startDate"), c.Query("endDate")
	if startStr != "" && endStr != "" {
		start, errS := parseDateParam(startStr)
		end, errE := parseDateParam(endStr)
		if errS == nil && errE == nil {
			custom = &revenue.CustomRange{StartDate: start, EndDate: end}
		}
	}
	sel = revenue.Normalize(sel, custom)

	cacheKey := revenueCacheKey(id, sel, startStr, endStr)
	if config.RDB != nil {
		if cached, err := config.RDB.Get(config.Ctx, cacheKey).Result(); err == nil {
			var resp revenueReportResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	var records []models.TransactionRecord
	if err := config.DB.
		Preload("Student").Preload("Tutor").Preload("Course").
		Where("academy_id = ?", id).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	report := revenue.BuildReport(toEngineTransactions(records), sel, custom, time.Now().UTC(), rosterLookup(id))
	resp := revenueReportResponse{
		Report: report,
		Display: map[string]string{
			"totalRevenue":     revenue.CompactINR(report.Current.TotalRevenue),
			"collectedRevenue": revenue.CompactINR(report.Current.CollectedRevenue),
			"pendingRevenue":   revenue.CompactINR(report.Current.PendingRevenue),
			"commission":       revenue.CompactINR(report.Current.Commission),
		},
	}

	if config.RDB != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := config.RDB.Set(config.Ctx, cacheKey, payload, config.ReportCacheTTL).Err(); err != nil {
				slog.Error("Failed to cache revenue report", "error", err, "academy_id", id)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// toEngineTransactions converts persisted payment rows into the loose snapshot
// format the aggregation engine consumes.
func toEngineTransactions(records []models.TransactionRecord) []revenue.Transaction {
	txns := make([]revenue.Transaction, 0, len(records))
	for _, r := range records {
		tx := revenue.Transaction{
			TransactionID: r.TransactionID,
			StudentID:     formatID(r.StudentID),
			CourseID:      formatID(r.CourseID),
			StudentName:   r.Student.FullName,
			CourseTitle:   r.Course.Title,
			Amount:        r.Amount,
			Commission:    r.Commission,
			Status:        r.Status,
			PaymentMethod: r.PaymentMethod,
			IsManualEntry: r.IsManualEntry,
		}
		if r.TutorID != nil {
			tx.TutorID = formatID(*r.TutorID)
			if r.Tutor != nil {
				tx.TutorName = r.Tutor.FullName
			}
		}
		if r.PaymentDate != nil {
			tx.PaymentDate = r.PaymentDate.UTC().Format(time.RFC3339)
		}
		if r.ValidUpto != nil {
			tx.ValidUpto = r.ValidUpto.UTC().Format(time.RFC3339)
		}
		txns = append(txns, tx)
	}
	return txns
}

// rosterLookup resolves tutor student counts from the academy roster.
// A failed query degrades to zero counts, the leaderboard still renders.
func rosterLookup(academyID uint) revenue.RosterLookup {
	var tutors []models.Tutor
	if err := config.DB.Where("academy_id = ?", academyID).Find(&tutors).Error; err != nil {
		slog.Error("Failed to load tutor roster", "error", err, "academy_id", academyID)
		return func(string) (int, error) { return 0, nil }
	}

	counts := make(map[string]int, len(tutors))
	for _, t := range tutors {
		counts[formatID(t.ID)] = t.StudentCount
	}
	return func(tutorID string) (int, error) {
		return counts[tutorID], nil
	}
}

func revenueCacheKey(academyID uint, sel revenue.Selector, start, end string) string {
	return fmt.Sprintf("revenue:report:%d:%s:%s:%s", academyID, sel, start, end)
}

// invalidateRevenueCache сбрасывает все закэшированные отчеты академии.
func invalidateRevenueCache(academyID uint) {
	if config.RDB == nil {
		return
	}
	pattern := fmt.Sprintf("revenue:report:%d:*", academyID)
	keys, err := config.RDB.Keys(config.Ctx, pattern).Result()
	if err != nil {
		slog.Error("Failed to scan revenue cache keys", "error", err, "academy_id", academyID)
		return
	}
	if len(keys) > 0 {
		if err := config.RDB.Del(config.Ctx, keys...).Err(); err != nil {
			slog.Error("Failed to invalidate revenue cache", "error", err, "academy_id", academyID)
		}
	}
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
