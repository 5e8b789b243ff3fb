package service

import (
	"fmt"

	"banana-ripeness-go/internal/color"
	"banana-ripeness-go/internal/ripeness"
	"banana-ripeness-go/pkg/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ClassifierService сервис классификации спелости бананов
type ClassifierService struct {
	logger      *logrus.Logger
	extractOpts color.Options
}

// NewClassifierService создает новый сервис классификации
func NewClassifierService(logger *logrus.Logger, maxImageDimension, sampleStride int) *ClassifierService {
	return &ClassifierService{
		logger: logger,
		extractOpts: color.Options{
			MaxDimension: maxImageDimension,
			SampleStride: sampleStride,
		},
	}
}

// ClassifyImage классифицирует спелость банана по изображению
func (s *ClassifierService) ClassifyImage(imageData []byte, filename string) (*models.RipenessReport, error) {
	s.logger.Infof("Начинаем анализ изображения %s (%d байт)", filename, len(imageData))

	extraction, err := color.ExtractDominantHue(imageData, s.extractOpts)
	if err != nil {
		s.logger.Errorf("Ошибка извлечения доминирующего оттенка: %v", err)
		return nil, fmt.Errorf("ошибка анализа изображения: %w", err)
	}

	if extraction.Fallback {
		// Деградация анализа - изображение декодировано, но выборка не удалась
		s.logger.Warnf("Анализ изображения %s деградировал до оттенка по умолчанию %.1f°", filename, extraction.Hue)
	} else {
		s.logger.Infof("Извлечен доминирующий оттенок %.2f° из %d пикселей", extraction.Hue, extraction.Pixels)
	}

	report := s.buildReport(extraction.Hue)
	report.Fallback = extraction.Fallback

	s.logger.Infof("Изображение %s классифицировано: стадия %d, уверенность %.2f", filename, report.Stage, report.Confidence)
	return report, nil
}

// ClassifyColor классифицирует спелость банана по hex цвету
func (s *ClassifierService) ClassifyColor(hexColor string) (*models.RipenessReport, error) {
	s.logger.Infof("Начинаем классификацию по цвету %s", hexColor)

	hue, err := color.HexToHue(hexColor)
	if err != nil {
		s.logger.Errorf("Ошибка преобразования hex цвета: %v", err)
		return nil, fmt.Errorf("ошибка преобразования цвета: %w", err)
	}

	report := s.buildReport(hue)

	s.logger.Infof("Цвет %s классифицирован: оттенок %.2f°, стадия %d", hexColor, hue, report.Stage)
	return report, nil
}

// DetectRipeness выполняет анализ изображения в legacy режиме: любая ошибка
// анализа поглощается и возвращается отчет-заглушка с нулевой стадией,
// чтобы этот путь оставался тотальным для вызывающей стороны.
func (s *ClassifierService) DetectRipeness(imageData []byte) *models.RipenessReport {
	report, err := s.ClassifyImage(imageData, "upload")
	if err != nil {
		s.logger.Warnf("Legacy анализ завершился ошибкой, возвращаем отчет-заглушку: %v", err)
		unknown := ripeness.UnknownReport()
		unknown.AnalysisID = uuid.New().String()
		return &unknown
	}
	return report
}

// StageCatalog возвращает справочник всех стадий спелости
func (s *ClassifierService) StageCatalog() []models.StageDetails {
	return ripeness.StageCatalog()
}

// StageDetails возвращает справочную информацию об одной стадии
func (s *ClassifierService) StageDetails(stage int) (models.StageDetails, bool) {
	md, ok := ripeness.Metadata(stage)
	if !ok {
		return models.StageDetails{}, false
	}
	return models.StageDetails{
		Stage:           stage,
		Description:     md.Description,
		HueMin:          md.HueMin,
		HueMax:          md.HueMax,
		MinDays:         md.MinDays,
		MaxDays:         md.MaxDays,
		Recommendations: append([]string(nil), md.Recommendations...),
	}, true
}

// buildReport строит отчет по оттенку и присваивает ему уникальный ID анализа
func (s *ClassifierService) buildReport(hue float64) *models.RipenessReport {
	stage := ripeness.StageForHue(hue)
	report := ripeness.BuildReport(hue, stage)
	report.AnalysisID = uuid.New().String()
	return &report
}
