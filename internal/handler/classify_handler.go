package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"banana-ripeness-go/internal/color"
	"banana-ripeness-go/internal/config"
	"banana-ripeness-go/internal/service"
	"banana-ripeness-go/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ClassifyHandler обрабатывает HTTP запросы классификации спелости бананов
type ClassifyHandler struct {
	classifierService *service.ClassifierService
	logger            *logrus.Logger
	config            *config.Config
}

// NewClassifyHandler создает новый экземпляр ClassifyHandler
func NewClassifyHandler(classifierService *service.ClassifierService, logger *logrus.Logger, cfg *config.Config) *ClassifyHandler {
	return &ClassifyHandler{
		classifierService: classifierService,
		logger:            logger,
		config:            cfg,
	}
}

// RegisterRoutes регистрирует маршруты API
func (h *ClassifyHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/classify", h.Classify)
		api.POST("/detect", h.DetectRipeness)
		api.GET("/stages", h.ListStages)
		api.GET("/stages/:stage", h.GetStage)
		api.GET("/health", h.CheckHealth)
	}
}

// Classify обрабатывает запрос классификации по изображению или hex цвету.
// Принимает multipart форму с файлом "image" или полем "color", а также
// JSON тело {"color": "#FFE135"}.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	h.logger.Info("Получен запрос на классификацию спелости банана")

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.classifyMultipart(c)
		return
	}

	// JSON путь: классификация по hex цвету
	var request models.ClassifyColorRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Color == "" {
		h.logger.Error("Не передан ни файл изображения, ни hex цвет")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Передайте файл изображения (image) или hex цвет (color)",
		})
		return
	}

	h.classifyColor(c, request.Color)
}

// classifyMultipart обрабатывает multipart форму с изображением или цветом
func (h *ClassifyHandler) classifyMultipart(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.config.Upload.MaxSizeBytes); err != nil {
		h.logger.Errorf("Ошибка парсинга multipart form: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка парсинга формы"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()
		h.classifyImage(c, file, header)
		return
	}

	if hexColor := c.PostForm("color"); hexColor != "" {
		h.classifyColor(c, hexColor)
		return
	}

	h.logger.Error("Не передан ни файл изображения, ни hex цвет")
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Передайте файл изображения (image) или hex цвет (color)",
	})
}

// classifyImage валидирует загруженный файл и запускает анализ изображения
func (h *ClassifyHandler) classifyImage(c *gin.Context, file multipart.File, header *multipart.FileHeader) {
	if err := h.validateUpload(header); err != nil {
		h.logger.Errorf("Ошибка валидации файла %s: %v", header.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		h.logger.Errorf("Ошибка чтения файла изображения: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка чтения файла изображения"})
		return
	}
	h.logger.Infof("Прочитано %d байт изображения из файла %s", len(imageData), header.Filename)

	report, err := h.classifierService.ClassifyImage(imageData, header.Filename)
	if err != nil {
		if errors.Is(err, color.ErrInvalidImageFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Файл не является корректным изображением"})
			return
		}
		h.logger.Errorf("Ошибка анализа изображения: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка анализа изображения"})
		return
	}

	h.logger.Info("Классификация по изображению завершена успешно")
	c.JSON(http.StatusOK, report)
}

// classifyColor запускает классификацию по hex цвету
func (h *ClassifyHandler) classifyColor(c *gin.Context, hexColor string) {
	report, err := h.classifierService.ClassifyColor(hexColor)
	if err != nil {
		if errors.Is(err, color.ErrInvalidColorFormat) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Некорректный hex цвет, ожидается формат #FF0000 или FF0000",
			})
			return
		}
		h.logger.Errorf("Ошибка классификации по цвету: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка классификации по цвету"})
		return
	}

	h.logger.Info("Классификация по цвету завершена успешно")
	c.JSON(http.StatusOK, report)
}

// DetectRipeness обрабатывает legacy запрос анализа изображения.
// Ошибки анализа не приводят к 500: вместо этого возвращается
// отчет-заглушка с нулевой стадией, как в историческом API.
func (h *ClassifyHandler) DetectRipeness(c *gin.Context) {
	h.logger.Info("Получен legacy запрос на определение спелости")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.logger.Errorf("Ошибка получения файла изображения: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл изображения обязателен"})
		return
	}
	defer file.Close()

	if err := h.validateUpload(header); err != nil {
		h.logger.Errorf("Ошибка валидации файла %s: %v", header.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		h.logger.Errorf("Ошибка чтения файла изображения: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка чтения файла изображения"})
		return
	}

	report := h.classifierService.DetectRipeness(imageData)
	c.JSON(http.StatusOK, report)
}

// ListStages возвращает справочник всех стадий спелости
func (h *ClassifyHandler) ListStages(c *gin.Context) {
	h.logger.Info("Получен запрос справочника стадий спелости")

	stages := h.classifierService.StageCatalog()
	c.JSON(http.StatusOK, gin.H{
		"stages": stages,
		"total":  len(stages),
	})
}

// GetStage возвращает справочную информацию об одной стадии спелости
func (h *ClassifyHandler) GetStage(c *gin.Context) {
	stageStr := c.Param("stage")

	stage, err := strconv.Atoi(stageStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат номера стадии"})
		return
	}

	details, ok := h.classifierService.StageDetails(stage)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Стадия не найдена"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// CheckHealth проверяет состояние сервиса
func (h *ClassifyHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: "1.0.0",
	})
}

// validateUpload проверяет расширение и размер загруженного файла
func (h *ClassifyHandler) validateUpload(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))

	allowed := false
	for _, allowedExt := range h.config.Upload.AllowedExtensions {
		if ext == allowedExt {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("недопустимый тип файла %q, разрешены: %s", ext, strings.Join(h.config.Upload.AllowedExtensions, ", "))
	}

	if header.Size > h.config.Upload.MaxSizeBytes {
		return fmt.Errorf("файл слишком большой, максимальный размер %d МБ", h.config.Upload.MaxSizeBytes/(1024*1024))
	}

	return nil
}
