// upkraft-crm/internal/routes/auth_routes.go
package routes

import (
	"upkraft-crm/internal/handlers"
	"upkraft-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes регистрирует публичные маршруты аутентификации.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/auth/login", handlers.LoginHandler)
	r.POST("/auth/register", handlers.RegisterHandler)

	// Выход требует токена, чтобы сбросить кэш данных пользователя.
	r.POST("/auth/logout", middleware.AuthMiddleware(), handlers.LogoutHandler)
}
