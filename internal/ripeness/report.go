package ripeness

import (
	"fmt"

	"banana-ripeness-go/pkg/models"
)

// BuildReport собирает итоговый отчет по уже вычисленным оттенку и стадии.
// Для стадии вне таблицы метаданных подставляются общие описание и
// рекомендации. Функция тотальна: ошибка оценки дней до пика невозможна
// для стадий из таблицы и защитно заменяется нулем.
func BuildReport(hue float64, stage int) models.RipenessReport {
	description := unknownDescription
	recommendations := unknownRecommendations

	if md, ok := stageMetadata[stage]; ok {
		description = md.Description
		recommendations = md.Recommendations
	}

	days, err := DaysUntilPeak(stage)
	if err != nil {
		days = 0
	}

	return models.RipenessReport{
		Stage:           stage,
		Level:           fmt.Sprintf("Stage %d", stage),
		Description:     description,
		DominantHue:     hue,
		DaysUntilPeak:   days,
		Confidence:      Confidence(hue, stage),
		Recommendations: append([]string(nil), recommendations...),
	}
}

// UnknownReport возвращает отчет-заглушку для случая, когда анализ
// изображения завершился невосстановимой ошибкой. Граница сервиса
// транслирует его в понятный пользователю ответ.
func UnknownReport() models.RipenessReport {
	return models.RipenessReport{
		Stage:           0,
		Level:           "Unknown",
		Description:     "Unable to analyze the image",
		DominantHue:     0,
		DaysUntilPeak:   0,
		Confidence:      0,
		Recommendations: []string{"Please try with a clearer image"},
	}
}
