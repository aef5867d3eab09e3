// upkraft-crm/internal/handlers/receipt_handler.go
package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"upkraft-crm/config"
	"upkraft-crm/internal/revenue"
	"upkraft-crm/models"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReceiptResponse - данные квитанции по одному платежу.
type ReceiptResponse struct {
	TransactionID  string     `json:"transactionId"`
	StudentName    string     `json:"studentName"`
	TutorName      string     `json:"tutorName"`
	CourseTitle    string     `json:"courseTitle"`
	Amount         float64    `json:"amount"`
	AmountDisplay  string     `json:"amountDisplay"`
	AmountInWords  string     `json:"amountInWords"`
	Commission     float64    `json:"commission"`
	Status         string     `json:"status"`
	PaymentMethod  string     `json:"paymentMethod"`
	PaymentDate    *time.Time `json:"paymentDate"`
	ValidUpto      *time.Time `json:"validUpto"`
	IssuedAt       time.Time  `json:"issuedAt"`
}

// GetReceiptHandler возвращает квитанцию по платежу: суммы в формате en-IN
// и прописью (так квитанция печатается для родителей).
func GetReceiptHandler(c *gin.Context) {
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

	resp := ReceiptResponse{
		TransactionID: record.TransactionID,
		StudentName:   record.Student.FullName,
		CourseTitle:   record.Course.Title,
		Amount:        record.Amount,
		AmountDisplay: revenue.FormatINR(record.Amount),
		AmountInWords: amountToWords(record.Amount),
		Commission:    record.Commission,
		Status:        record.Status,
		PaymentMethod: record.PaymentMethod,
		PaymentDate:   record.PaymentDate,
		ValidUpto:     record.ValidUpto,
		IssuedAt:      time.Now().UTC(),
	}
	if record.Tutor != nil {
		resp.TutorName = record.Tutor.FullName
	}

	c.JSON(http.StatusOK, resp)
}

// amountToWords переводит сумму в рупиях в словесную форму для квитанции.
func amountToWords(amount float64) string {
	rupees := int(amount)
	paise := int(math.Round((amount - float64(rupees)) * 100))

	words := strings.TrimSpace(num2words.Convert(rupees))
	if paise > 0 {
		return fmt.Sprintf("%s rupees %02d paise", words, paise)
	}
	return fmt.Sprintf("%s rupees only", words)
}
