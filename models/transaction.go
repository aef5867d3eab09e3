// upkraft-crm/models/transaction.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Статусы платежа. Колонка строковая и открытая: чужие значения не ломают
// агрегацию, но и не попадают в "собрано"/"в ожидании".
const (
	TxStatusPaid    = "Paid"
	TxStatusPending = "Pending"
	TxStatusFailed  = "Failed"
)

// TransactionRecord представляет один платеж ученика за курс.
// Редактировать и удалять можно только записи, внесенные вручную (IsManualEntry).
type TransactionRecord struct {
	gorm.Model
	AcademyID     uint       `json:"academyId" gorm:"index;not null"`
	TransactionID string     `json:"transactionId" gorm:"size:64;uniqueIndex;not null"`
	StudentID     uint       `json:"studentId" gorm:"index;not null"`
	Student       Student    `json:"-"`
	TutorID       *uint      `json:"tutorId" gorm:"index"`
	Tutor         *Tutor     `json:"-"`
	CourseID      uint       `json:"courseId" gorm:"index;not null"`
	Course        Course     `json:"-"`
	Amount        float64    `json:"amount" gorm:"type:numeric(12,2);not null"`
	Commission    float64    `json:"commission" gorm:"type:numeric(12,2);not null"`
	Status        string     `json:"status" gorm:"size:16;default:'Pending'"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentDate   *time.Time `json:"paymentDate"`
	ValidUpto     *time.Time `json:"validUpto"`
	IsManualEntry bool       `json:"isManualEntry"`
}
