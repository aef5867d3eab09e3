// upkraft-crm/internal/handlers/tutor_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"upkraft-crm/config"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TutorInput - данные формы создания/редактирования репетитора.
type TutorInput struct {
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	IsVerified   bool   `json:"isVerified"`
	StudentCount int    `json:"studentCount"`
}

// ListTutorsHandler возвращает реестр репетиторов академии.
// Этот список - источник studentCount для обогащения топ-репетиторов на панели.
func ListTutorsHandler(c *gin.Context) {
	query := config.DB.Where("academy_id = ?", academyID(c)).Order("full_name asc")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(subject) LIKE ?", pattern, pattern)
	}

	if c.Query("all") == "true" {
		var tutors []models.Tutor
		if err := query.Find(&tutors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch tutors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "tutors": tutors})
		return
	}

	var totalRows int64
	query.Model(&models.Tutor{}).Count(&totalRows)

	var tutors []models.Tutor
	if err := query.Scopes(Paginate(c)).Find(&tutors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch tutors"})
		return
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, tutors, totalRows))
}

// GetTutorHandler возвращает одного репетитора.
func GetTutorHandler(c *gin.Context) {
	var tutor models.Tutor
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&tutor, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, tutor)
}

// CreateTutorHandler создает репетитора.
func CreateTutorHandler(c *gin.Context) {
	var input TutorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	tutor := models.Tutor{
		AcademyID:    academyID(c),
		FullName:     input.FullName,
		Email:        input.Email,
		Subject:      input.Subject,
		IsVerified:   input.IsVerified,
		StudentCount: input.StudentCount,
	}
	if err := config.DB.Create(&tutor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tutor"})
		return
	}
	c.JSON(http.StatusCreated, tutor)
}

// UpdateTutorHandler обновляет данные репетитора.
func UpdateTutorHandler(c *gin.Context) {
	var tutor models.Tutor
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&tutor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}

	var input TutorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	tutor.FullName = input.FullName
	tutor.Email = input.Email
	tutor.Subject = input.Subject
	tutor.IsVerified = input.IsVerified
	tutor.StudentCount = input.StudentCount

	if err := config.DB.Save(&tutor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tutor"})
		return
	}

	// Отчет кэшируется вместе с studentCount - сбрасываем.
	invalidateRevenueCache(tutor.AcademyID)
	c.JSON(http.StatusOK, tutor)
}

// DeleteTutorHandler удаляет репетитора.
func DeleteTutorHandler(c *gin.Context) {
	result := config.DB.Where("academy_id = ?", academyID(c)).Delete(&models.Tutor{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tutor"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tutor deleted"})
}
