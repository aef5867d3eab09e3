// upkraft-crm/internal/handlers/settings_handler.go
package handlers

import (
	"net/http"

	"upkraft-crm/config"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentMethodInput - один способ оплаты из формы настроек.
type PaymentMethodInput struct {
	Name      string `json:"name" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

// defaultPaymentMethods - стартовый набор, который видит академия без настроек.
var defaultPaymentMethods = []models.PaymentMethodSetting{
	{Name: "Cash", IsDefault: true},
	{Name: "UPI"},
	{Name: "Bank Transfer"},
}

// GetPaymentMethodsHandler возвращает способы оплаты академии.
// Пустой список прозрачно заполняется значениями по умолчанию.
func GetPaymentMethodsHandler(c *gin.Context) {
	id := academyID(c)

	var methods []models.PaymentMethodSetting
	if err := config.DB.Where("academy_id = ?", id).Order("id asc").Find(&methods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payment methods"})
		return
	}

	if len(methods) == 0 {
		for _, m := range defaultPaymentMethods {
			m.AcademyID = id
			if err := config.DB.Create(&m).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed payment methods"})
				return
			}
			methods = append(methods, m)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "paymentMethods": methods})
}

// UpdatePaymentMethodsHandler заменяет список способов оплаты целиком.
// Ровно один способ должен быть помечен как способ по умолчанию.
func UpdatePaymentMethodsHandler(c *gin.Context) {
	var inputs []PaymentMethodInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	if err := validatePaymentMethods(inputs); err != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	id := academyID(c)
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("academy_id = ?", id).Delete(&models.PaymentMethodSetting{}).Error; err != nil {
			return err
		}
		for _, input := range inputs {
			method := models.PaymentMethodSetting{
				AcademyID: id,
				Name:      input.Name,
				IsDefault: input.IsDefault,
			}
			if err := tx.Create(&method).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment methods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment methods updated"})
}

// validatePaymentMethods проверяет список из формы; возвращает текст ошибки или "".
func validatePaymentMethods(inputs []PaymentMethodInput) string {
	if len(inputs) == 0 {
		return "At least one payment method is required"
	}

	defaults := 0
	seen := make(map[string]bool, len(inputs))
	for _, m := range inputs {
		if m.Name == "" {
			return "Payment method name must not be empty"
		}
		if seen[m.Name] {
			return "Duplicate payment method: " + m.Name
		}
		seen[m.Name] = true
		if m.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		return "Exactly one payment method must be marked as default"
	}
	return ""
}

// CommissionFormulaInput - формула комиссии из настроек академии.
type CommissionFormulaInput struct {
	Formula string `json:"formula" binding:"required"`
}

// UpdateCommissionFormulaHandler сохраняет формулу комиссии.
// Формула проверяется пробным вычислением, чтобы не сломать создание платежей.
func UpdateCommissionFormulaHandler(c *gin.Context) {
	var input CommissionFormulaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	if !formulaIsUsable(input.Formula) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Формула не вычисляется: " + input.Formula})
		return
	}

	if err := config.DB.Model(&models.Academy{}).
		Where("id = ?", academyID(c)).
		Update("commission_formula", input.Formula).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commission formula"})
		return
	}

	invalidateRevenueCache(academyID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Commission formula updated"})
}
