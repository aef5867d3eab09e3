// upkraft-crm/models/user.go
package models

import "gorm.io/gorm"

// User - учетная запись панели администратора академии.
type User struct {
	gorm.Model
	AcademyID    uint   `json:"academyId" gorm:"index"`
	Login        string `json:"login" gorm:"uniqueIndex;not null"`
	FullName     string `json:"fullName"`
	PasswordHash string `json:"-" gorm:"not null"`
	Roles        []Role `json:"roles" gorm:"many2many:user_roles;"`
}

// Role - роль пользователя с набором прав.
type Role struct {
	gorm.Model
	Name        string       `json:"name" gorm:"uniqueIndex;not null"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions;"`
}

// Permission - атомарное право доступа (например, "transactions_edit").
type Permission struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
