// upkraft-crm/internal/handlers/course_file_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"upkraft-crm/config"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadCourseFileHandler принимает материал курса (до 25 МБ), сохраняет его
// под уникальным именем и пишет метаданные в БД.
func UploadCourseFileHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&course, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 25<<20+512)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл не предоставлен или слишком большой"})
		return
	}

	uploadDir := filepath.Join(config.UploadDir, fmt.Sprintf("%d", course.ID))
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать директорию для загрузки"})
		return
	}

	// Генерируем уникальное имя файла
	ext := filepath.Ext(file.Filename)
	newFileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(uploadDir, newFileName)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить файл"})
		return
	}

	record := models.CourseFile{
		CourseID: course.ID,
		Name:     file.Filename,
		URL:      fmt.Sprintf("/static/uploads/courses/%d/%s", course.ID, newFileName),
		Size:     file.Size,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file metadata"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListCourseFilesHandler возвращает материалы курса.
func ListCourseFilesHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Where("academy_id = ?", academyID(c)).First(&course, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var files []models.CourseFile
	if err := config.DB.Where("course_id = ?", course.ID).Order("created_at desc").Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch files"})
		return
	}
	c.JSON(http.StatusOK, files)
}
