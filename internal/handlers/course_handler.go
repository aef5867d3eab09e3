// upkraft-crm/internal/handlers/course_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"upkraft-crm/config"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CourseInput - данные формы курса.
type CourseInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	TutorID     *uint   `json:"tutorId"`
	Price       float64 `json:"price"`
}

// ClassInput - данные формы занятия.
type ClassInput struct {
	Title     string `json:"title" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ListCoursesHandler возвращает курсы академии с именем репетитора.
func ListCoursesHandler(c *gin.Context) {
	type courseRow struct {
		ID        uint    `json:"id"`
		Title     string  `json:"title"`
		TutorID   *uint   `json:"tutorId"`
		TutorName string  `json:"tutorName"`
		Price     float64 `json:"price"`
	}
	var rows []courseRow
	var totalRows int64

	baseQuery := config.DB.Table("courses co").
		Joins("LEFT JOIN tutors t ON co.tutor_id = t.id").
		Where("co.academy_id = ? AND co.deleted_at IS NULL", academyID(c))

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(co.title) LIKE ? OR LOWER(t.full_name) LIKE ?", pattern, pattern)
	}

	baseQuery.Count(&totalRows)

	if err := baseQuery.
		Select("co.id, co.title, co.tutor_id, COALESCE(t.full_name, '') AS tutor_name, co.price").
		Scopes(Paginate(c)).
		Order("co.title asc").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch courses"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, rows, totalRows))
}

// GetCourseHandler возвращает курс со списком занятий и материалов.
func GetCourseHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Preload("Tutor").
		Where("academy_id = ?", academyID(c)).
		First(&course, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var classes []models.Class
	config.DB.Where("course_id = ?", course.ID).Order("start_time asc NULLS LAST").Find(&classes)

	var files []models.CourseFile
	config.DB.Where("course_id = ?", course.ID).Order("created_at desc").Find(&files)

	c.JSON(http.StatusOK, gin.H{"course": course, "classes": classes, "files": files})
}

// CreateCourseHandler создает курс.
func CreateCourseHandler(c *gin.Context) {
	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	course := models.Course{
		AcademyID:   academyID(c),
		Title:       input.Title,
		Description: input.Description,
		TutorID:     input.TutorID,
		Price:       input.Price,
	}
	if err := config.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourseHandler обновляет курс.
func UpdateCourseHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&course, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	course.Title = input.Title
	course.Description = input.Description
	course.TutorID = input.TutorID
	course.Price = input.Price

	if err := config.DB.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourseHandler удаляет курс.
func DeleteCourseHandler(c *gin.Context) {
	result := config.DB.Where("academy_id = ?", academyID(c)).Delete(&models.Course{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

// CreateClassHandler добавляет занятие к курсу.
func CreateClassHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&course, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var input ClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	class := models.Class{CourseID: course.ID, Title: input.Title}
	if input.StartTime != "" {
		if t, err := time.Parse(time.RFC3339, input.StartTime); err == nil {
			class.StartTime = &t
		}
	}
	if input.EndTime != "" {
		if t, err := time.Parse(time.RFC3339, input.EndTime); err == nil {
			class.EndTime = &t
		}
	}

	if err := config.DB.Create(&class).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}
	c.JSON(http.StatusCreated, class)
}

// DeleteClassHandler удаляет занятие курса.
func DeleteClassHandler(c *gin.Context) {
	// Занятие должно принадлежать курсу академии текущего пользователя.
	result := config.DB.
		Where("id = ? AND course_id IN (SELECT id FROM courses WHERE academy_id = ?)",
			c.Param("classId"), academyID(c)).
		Delete(&models.Class{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}

// AttendanceInput - отметки посещаемости по одному занятию.
type AttendanceInput struct {
	Records []struct {
		StudentID uint   `json:"studentId" binding:"required"`
		Status    string `json:"status"`
	} `json:"records" binding:"required"`
}

// MarkAttendanceHandler массово отмечает посещаемость занятия.
// Повторная отметка по той же паре (занятие, ученик) перезаписывает статус.
func MarkAttendanceHandler(c *gin.Context) {
	var class models.Class
	if err := config.DB.
		Where("id = ? AND course_id IN (SELECT id FROM courses WHERE academy_id = ?)",
			c.Param("classId"), academyID(c)).
		First(&class).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	var input AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, rec := range input.Records {
			status := rec.Status
			if status == "" {
				status = "present"
			}
			attendance := models.Attendance{ClassID: class.ID, StudentID: rec.StudentID}
			if err := tx.Where(models.Attendance{ClassID: class.ID, StudentID: rec.StudentID}).
				Assign(map[string]interface{}{"status": status}).
				FirstOrCreate(&attendance).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attendance marked", "count": len(input.Records)})
}

// GetAttendanceHandler возвращает посещаемость занятия.
func GetAttendanceHandler(c *gin.Context) {
	// Занятие должно принадлежать курсу академии текущего пользователя.
	var class models.Class
	if err := config.DB.
		Where("id = ? AND course_id IN (SELECT id FROM courses WHERE academy_id = ?)",
			c.Param("classId"), academyID(c)).
		First(&class).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	var records []models.Attendance
	if err := config.DB.
		Where("class_id = ?", class.ID).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch attendance"})
		return
	}
	c.JSON(http.StatusOK, records)
}
