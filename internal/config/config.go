package config

import (
	"os"
	"strconv"
	"strings"
)

// Config структура конфигурации приложения
type Config struct {
	Server struct {
		Port string
		Host string
	}
	Environment string
	Logging     struct {
		Level string
	}
	Upload struct {
		MaxSizeBytes      int64    // Максимальный размер загружаемого файла
		AllowedExtensions []string // Разрешенные расширения файлов изображений
	}
	Analysis struct {
		MaxImageDimension int // Порог уменьшения изображения по большей стороне
		SampleStride      int // Шаг выборки пикселей при анализе
	}
	RateLimit struct {
		Enabled         bool
		RequestsPerHour int
		Burst           int
	}
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() *Config {
	cfg := &Config{}

	// Конфигурация сервера
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Environment = getEnv("ENVIRONMENT", "development")

	// Конфигурация логирования
	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")

	// Конфигурация загрузки файлов
	cfg.Upload.MaxSizeBytes = int64(getEnvInt("UPLOAD_MAX_SIZE_MB", 10)) * 1024 * 1024
	cfg.Upload.AllowedExtensions = getEnvList("UPLOAD_ALLOWED_EXTENSIONS", []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"})

	// Конфигурация анализа изображений
	cfg.Analysis.MaxImageDimension = getEnvInt("ANALYSIS_MAX_IMAGE_DIMENSION", 800)
	cfg.Analysis.SampleStride = getEnvInt("ANALYSIS_SAMPLE_STRIDE", 2)

	// Конфигурация ограничения частоты запросов
	cfg.RateLimit.Enabled = getEnvBool("RATELIMIT_ENABLED", true)
	cfg.RateLimit.RequestsPerHour = getEnvInt("RATELIMIT_REQUESTS_PER_HOUR", 100)
	cfg.RateLimit.Burst = getEnvInt("RATELIMIT_BURST", 10)

	return cfg
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает int значение переменной окружения или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool получает bool значение переменной окружения или возвращает значение по умолчанию
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvList получает список значений через запятую или возвращает значение по умолчанию
func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
