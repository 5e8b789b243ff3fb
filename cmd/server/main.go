package main

import (
	"fmt"
	"net/http"

	"banana-ripeness-go/internal/config"
	"banana-ripeness-go/internal/handler"
	"banana-ripeness-go/internal/middleware"
	"banana-ripeness-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Инициализируем логгер
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Запуск Banana Ripeness API Server")

	// Получаем конфигурацию из переменных окружения
	cfg := config.LoadConfig()

	// Настраиваем уровень логирования
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logger.Warnf("Неизвестный уровень логирования %q, используем info", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Инициализируем сервисы
	classifierService := service.NewClassifierService(logger, cfg.Analysis.MaxImageDimension, cfg.Analysis.SampleStride)

	// Инициализируем обработчики
	classifyHandler := handler.NewClassifyHandler(classifierService, logger, cfg)

	// Настраиваем Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Добавляем middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerHour, cfg.RateLimit.Burst))
		logger.Infof("Ограничение частоты запросов включено: %d запросов в час", cfg.RateLimit.RequestsPerHour)
	}

	// Ограничиваем размер multipart форм размером загружаемого файла
	router.MaxMultipartMemory = cfg.Upload.MaxSizeBytes

	// Регистрируем маршруты
	classifyHandler.RegisterRoutes(router)

	// Добавляем базовый маршрут для проверки
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Banana Ripeness API Server",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	// Запускаем сервер
	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Сервер запущен на %s", serverAddr)
	logger.Infof("API доступно по адресу: http://localhost:%s/api/v1", cfg.Server.Port)

	if err := router.Run(serverAddr); err != nil {
		logger.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
