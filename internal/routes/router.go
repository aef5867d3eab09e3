// upkraft-crm/internal/routes/router.go
package routes

import (
	"upkraft-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	// Публичные маршруты: вход и регистрация академии.
	RegisterAuthRoutes(r)

	// Все остальное доступно только с валидным JWT.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
