// upkraft-crm/internal/handlers/transaction_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"upkraft-crm/config"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionInput - структура для приема данных от клиента.
// PaymentDate принимаем строкой, чтобы не падать на автоматическом парсинге.
type TransactionInput struct {
	StudentID     uint    `json:"studentId" binding:"required"`
	TutorID       *uint   `json:"tutorId"`
	CourseID      uint    `json:"courseId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentDate   string  `json:"paymentDate"`
	ValidUpto     string  `json:"validUpto"`
}

// TransactionResponse - ответ с денормализованными именами для таблицы платежей.
type TransactionResponse struct {
	ID            uint       `json:"id"`
	TransactionID string     `json:"transactionId"`
	StudentID     uint       `json:"studentId"`
	TutorID       *uint      `json:"tutorId"`
	CourseID      uint       `json:"courseId"`
	StudentName   string     `json:"studentName"`
	TutorName     string     `json:"tutorName"`
	CourseTitle   string     `json:"courseTitle"`
	Amount        float64    `json:"amount"`
	Commission    float64    `json:"commission"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentDate   *time.Time `json:"paymentDate"`
	ValidUpto     *time.Time `json:"validUpto"`
	IsManualEntry bool       `json:"isManualEntry"`
}

// ListTransactionsHandler возвращает платежи академии с пагинацией и поиском.
func ListTransactionsHandler(c *gin.Context) {
	var results []TransactionResponse
	var totalRows int64

	baseQuery := config.DB.Table("transaction_records tr").
		Joins("LEFT JOIN students s ON tr.student_id = s.id").
		Joins("LEFT JOIN tutors t ON tr.tutor_id = t.id").
		Joins("LEFT JOIN courses co ON tr.course_id = co.id").
		Where("tr.academy_id = ? AND tr.deleted_at IS NULL", academyID(c))

	// Поиск по имени ученика, репетитора или названию курса
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(s.full_name) LIKE ? OR LOWER(t.full_name) LIKE ? OR LOWER(co.title) LIKE ? OR LOWER(tr.transaction_id) LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if status := c.Query("status"); status != "" {
		baseQuery = baseQuery.Where("tr.status = ?", status)
	}
	if method := c.Query("paymentMethod"); method != "" {
		baseQuery = baseQuery.Where("tr.payment_method = ?", method)
	}

	baseQuery.Count(&totalRows)

	finalQuery := baseQuery.Select(`
		tr.id, tr.transaction_id, tr.student_id, tr.tutor_id, tr.course_id,
		COALESCE(s.full_name, '') AS student_name,
		COALESCE(t.full_name, '') AS tutor_name,
		COALESCE(co.title, '') AS course_title,
		tr.amount, tr.commission, tr.status, tr.payment_method,
		tr.payment_date, tr.valid_upto, tr.is_manual_entry
	`).
		Scopes(Paginate(c)).
		Order("tr.payment_date DESC NULLS LAST")

	if err := finalQuery.Scan(&results).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, results, totalRows))
}

// GetTransactionHandler возвращает один платеж по ID.
func GetTransactionHandler(c *gin.Context) {
	var record models.TransactionRecord
	if err := config.DB.
		Preload("Student").Preload("Tutor").Preload("Course").
		Where("academy_id = ?", academyID(c)).
		First(&record, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateTransactionHandler создает платеж, внесенный вручную.
// Комиссия считается по формуле академии (govaluate), а не приходит от клиента.
func CreateTransactionHandler(c *gin.Context) {
	var input TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	var academy models.Academy
	if err := config.DB.First(&academy, academyID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Academy not found"})
		return
	}

	status := input.Status
	if status == "" {
		status = models.TxStatusPending
	}

	record := models.TransactionRecord{
		AcademyID:     academy.ID,
		TransactionID: uuid.New().String(),
		StudentID:     input.StudentID,
		TutorID:       input.TutorID,
		CourseID:      input.CourseID,
		Amount:        input.Amount,
		Commission:    computeCommission(academy.CommissionFormula, input.Amount),
		Status:        status,
		PaymentMethod: input.PaymentMethod,
		IsManualEntry: true,
	}

	if input.PaymentDate != "" {
		if d, err := parseDateParam(input.PaymentDate); err == nil {
			record.PaymentDate = &d
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата платежа"})
			return
		}
	}
	if input.ValidUpto != "" {
		if d, err := parseDateParam(input.ValidUpto); err == nil {
			record.ValidUpto = &d
		}
	}

	if err := config.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	invalidateRevenueCache(academy.ID)
	DashboardHub.BroadcastPaymentEvent(academy.ID, "transaction.created", record)
	c.JSON(http.StatusCreated, record)
}

// UpdateTransactionHandler обновляет платеж. Разрешено только для ручных записей.
func UpdateTransactionHandler(c *gin.Context) {
	var record models.TransactionRecord
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&record, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	if !record.IsManualEntry {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only manually entered transactions can be edited"})
		return
	}

	var input TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	var academy models.Academy
	if err := config.DB.First(&academy, record.AcademyID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	record.StudentID = input.StudentID
	record.TutorID = input.TutorID
	record.CourseID = input.CourseID
	record.Amount = input.Amount
	record.Commission = computeCommission(academy.CommissionFormula, input.Amount)
	if input.Status != "" {
		record.Status = input.Status
	}
	record.PaymentMethod = input.PaymentMethod
	if input.PaymentDate != "" {
		if d, err := parseDateParam(input.PaymentDate); err == nil {
			record.PaymentDate = &d
		}
	}
	if input.ValidUpto != "" {
		if d, err := parseDateParam(input.ValidUpto); err == nil {
			record.ValidUpto = &d
		}
	}

	if err := config.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	invalidateRevenueCache(record.AcademyID)
	DashboardHub.BroadcastPaymentEvent(record.AcademyID, "transaction.updated", record)
	c.JSON(http.StatusOK, record)
}

// DeleteTransactionHandler удаляет платеж. Разрешено только для ручных записей.
func DeleteTransactionHandler(c *gin.Context) {
	var record models.TransactionRecord
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&record, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	if !record.IsManualEntry {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only manually entered transactions can be deleted"})
		return
	}

	if err := config.DB.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	invalidateRevenueCache(record.AcademyID)
	DashboardHub.BroadcastPaymentEvent(record.AcademyID, "transaction.deleted", record)
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
