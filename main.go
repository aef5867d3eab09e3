// upkraft-crm/main.go
package main

import (
	"log/slog"
	"os"

	"upkraft-crm/config"
	"upkraft-crm/internal/handlers"
	"upkraft-crm/internal/routes"
	"upkraft-crm/models"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	config.ConnectDB()
	config.ConnectRedis()

	// Схема управляется автомиграцией GORM.
	err := config.DB.AutoMigrate(
		&models.Academy{},
		&models.PaymentMethodSetting{},
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Tutor{},
		&models.Student{},
		&models.Course{},
		&models.Class{},
		&models.Attendance{},
		&models.CourseFile{},
		&models.TransactionRecord{},
	)
	if err != nil {
		slog.Error("Ошибка автомиграции", "error", err)
		os.Exit(1)
	}

	// Хаб платежных событий живет все время работы приложения.
	go handlers.DashboardHub.Run()

	r := gin.Default()
	r.Static("/static", "./static")
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Запуск сервера", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Сервер завершился с ошибкой", "error", err)
		os.Exit(1)
	}
}
