// upkraft-crm/internal/handlers/auth_handler.go
package handlers

import (
	"net/http"
	"time"

	"upkraft-crm/config"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// LoginInput - данные формы входа.
type LoginInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler проверяет учетные данные и выдает JWT в cookie и в теле ответа.
func LoginHandler(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Логин и пароль обязательны"})
		return
	}

	var user models.User
	if err := config.DB.Where("login = ?", input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный логин или пароль"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный логин или пароль"})
		return
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(config.JwtKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать токен"})
		return
	}

	c.SetCookie("auth_token", tokenStr, int(tokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": tokenStr})
}

// LogoutHandler сбрасывает cookie и кэш данных пользователя.
func LogoutHandler(c *gin.Context) {
	if userID, exists := c.Get("user_id"); exists && config.RDB != nil {
		if id, ok := userID.(uint); ok {
			config.RDB.Del(config.Ctx, userCacheKey(id))
		}
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// RegisterInput - данные формы регистрации администратора академии.
type RegisterInput struct {
	Login       string `json:"login" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"fullName"`
	AcademyName string `json:"academyName" binding:"required"`
}

// RegisterHandler создает академию и ее первого пользователя-администратора.
func RegisterHandler(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные: " + err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обработать пароль"})
		return
	}

	academy := models.Academy{Name: input.AcademyName}
	user := models.User{
		Login:        input.Login,
		FullName:     input.FullName,
		PasswordHash: string(hashedPassword),
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&academy).Error; err != nil {
			return err
		}
		user.AcademyID = academy.ID

		var adminRole models.Role
		if err := tx.Where(models.Role{Name: "admin"}).FirstOrCreate(&adminRole).Error; err != nil {
			return err
		}
		user.Roles = []models.Role{adminRole}
		return tx.Create(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким логином уже существует"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Academy registered", "academyId": academy.ID})
}
