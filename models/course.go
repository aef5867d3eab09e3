// upkraft-crm/models/course.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Course - курс академии, который ведет репетитор.
type Course struct {
	gorm.Model
	AcademyID   uint    `json:"academyId" gorm:"index;not null"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description"`
	TutorID     *uint   `json:"tutorId"`
	Tutor       *Tutor  `json:"tutor,omitempty"`
	Price       float64 `json:"price" gorm:"type:numeric(12,2);default:0"`
}

// Class - одно занятие курса. Посещаемость отмечается по занятию.
type Class struct {
	gorm.Model
	CourseID  uint       `json:"courseId" gorm:"index;not null"`
	Course    Course     `json:"-"`
	Title     string     `json:"title" gorm:"not null"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// Attendance - отметка посещаемости ученика на занятии.
// Пара (class_id, student_id) уникальна: повторная отметка перезаписывает статус.
type Attendance struct {
	gorm.Model
	ClassID   uint   `json:"classId" gorm:"uniqueIndex:idx_class_student;not null"`
	StudentID uint   `json:"studentId" gorm:"uniqueIndex:idx_class_student;not null"`
	Status    string `json:"status" gorm:"size:16;default:'present'"`
}

// CourseFile - метаданные загруженного материала курса.
type CourseFile struct {
	gorm.Model
	CourseID uint   `json:"courseId" gorm:"index;not null"`
	Name     string `json:"name" gorm:"not null"`
	URL      string `json:"url" gorm:"not null"`
	Size     int64  `json:"size"`
}
