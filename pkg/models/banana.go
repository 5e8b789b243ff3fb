package models

// RipenessReport представляет итоговый отчет классификации спелости банана
type RipenessReport struct {
	AnalysisID      string   `json:"analysis_id,omitempty"` // Уникальный ID анализа
	Stage           int      `json:"stage"`                 // Стадия спелости (1-7, 0 - неизвестно)
	Level           string   `json:"level"`                 // Человекочитаемый уровень ("Stage 3")
	Description     string   `json:"description"`           // Описание стадии
	DominantHue     float64  `json:"dominant_hue"`          // Доминирующий оттенок в градусах (0-360)
	DaysUntilPeak   int      `json:"days_until_peak"`       // Оценка дней до пика спелости
	Confidence      float64  `json:"confidence"`            // Уверенность классификации (0.0-1.0)
	Recommendations []string `json:"recommendations"`       // Рекомендации по использованию
	Fallback        bool     `json:"fallback,omitempty"`    // Анализ деградировал до значения по умолчанию
}

// StageDetails содержит статическую информацию о стадии спелости
type StageDetails struct {
	Stage           int      `json:"stage"`           // Номер стадии (1-7)
	Description     string   `json:"description"`     // Описание стадии
	HueMin          float64  `json:"hue_min"`         // Нижняя граница оттенка в градусах
	HueMax          float64  `json:"hue_max"`         // Верхняя граница оттенка в градусах
	MinDays         int      `json:"min_days"`        // Минимальная длительность стадии в днях
	MaxDays         int      `json:"max_days"`        // Максимальная длительность стадии в днях
	Recommendations []string `json:"recommendations"` // Рекомендации по использованию
}

// ClassifyColorRequest представляет JSON запрос классификации по hex цвету
type ClassifyColorRequest struct {
	Color string `json:"color"` // Hex цвет, например "#FFE135" или "FE5"
}

// HealthResponse представляет ответ проверки здоровья сервиса
type HealthResponse struct {
	Status  string `json:"status"`  // Статус сервиса (healthy/unhealthy)
	Version string `json:"version"` // Версия сервиса
}
