package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"upkraft-crm/config"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB подменяет config.DB на sqlite в памяти для тестов обработчиков.
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Class{}, &models.Attendance{}))
	config.DB = db
}

func attendanceRequest(academyID uint, classID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "classId", Value: classID}}
	c.Set("academy_id", academyID)
	GetAttendanceHandler(c)
	return w
}

func TestGetAttendanceScopedToAcademy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	course := models.Course{AcademyID: 1, Title: "Алгебра"}
	require.NoError(t, config.DB.Create(&course).Error)
	class := models.Class{CourseID: course.ID, Title: "Занятие 1"}
	require.NoError(t, config.DB.Create(&class).Error)
	mark := models.Attendance{ClassID: class.ID, StudentID: 7, Status: "present"}
	require.NoError(t, config.DB.Create(&mark).Error)

	classID := fmt.Sprintf("%d", class.ID)

	w := attendanceRequest(1, classID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"studentId":7`)

	// Чужая академия не видит ни посещаемость, ни сам факт существования занятия.
	w = attendanceRequest(2, classID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAttendanceUnknownClass(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	w := attendanceRequest(1, "9999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
