// upkraft-crm/models/academy.go
package models

import "gorm.io/gorm"

// Academy - арендатор системы (одна академия репетиторов).
type Academy struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
	// Формула комиссии платформы. Вычисляется через govaluate при создании платежа,
	// переменная "amount" - сумма операции.
	CommissionFormula string `json:"commissionFormula" gorm:"default:'amount * 0.15'"`
}

// PaymentMethodSetting - один способ оплаты в настройках академии.
type PaymentMethodSetting struct {
	gorm.Model
	AcademyID uint   `json:"academyId" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	IsDefault bool   `json:"isDefault"`
}
