// upkraft-crm/config/config.go
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// JwtKey - ключ для подписи JWT токенов. Загружается из окружения при старте.
var JwtKey []byte

// ReportCacheTTL определяет, как долго отчет по выручке живет в кэше Redis.
const ReportCacheTTL = 5 * time.Minute

// UploadDir - корневая директория для загружаемых файлов курсов.
const UploadDir = "./static/uploads/courses"

// Load читает .env (если он есть) и инициализирует настройки приложения.
// Отсутствие .env не является ошибкой: в проде переменные задаются окружением.
func Load() {
	if err := godotenv.Load(); err == nil {
		slog.Info("Конфигурация загружена из .env")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("Критическая ошибка: переменная окружения JWT_SECRET не установлена.")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
