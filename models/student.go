// upkraft-crm/models/student.go
package models

import "gorm.io/gorm"

// Student - ученик академии.
type Student struct {
	gorm.Model
	AcademyID uint   `json:"academyId" gorm:"index;not null"`
	FullName  string `json:"fullName" gorm:"not null"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
