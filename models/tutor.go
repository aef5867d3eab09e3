// upkraft-crm/models/tutor.go
package models

import "gorm.io/gorm"

// Tutor - репетитор академии. StudentCount денормализован и обновляется
// при зачислении/отчислении учеников; панель выручки читает его как есть.
type Tutor struct {
	gorm.Model
	AcademyID    uint   `json:"academyId" gorm:"index;not null"`
	FullName     string `json:"fullName" gorm:"not null"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	IsVerified   bool   `json:"isVerified"`
	StudentCount int    `json:"studentCount" gorm:"default:0"`
}
