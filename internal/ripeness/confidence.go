package ripeness

import "math"

const (
	// MinConfidence нижний предел уверенности на краю диапазона стадии
	MinConfidence = 0.3

	// MaxConfidence максимальная уверенность в центре диапазона стадии
	MaxConfidence = 1.0

	// NeutralConfidence уверенность для стадии без известного диапазона
	NeutralConfidence = 0.5
)

// Confidence вычисляет уверенность соответствия оттенка назначенной стадии
// по шкале 0.0-1.0. Максимум достигается в центре диапазона стадии и линейно
// убывает к краям, но не ниже MinConfidence. Для неизвестной стадии
// возвращается NeutralConfidence, для вырожденного диапазона нулевой
// ширины - MaxConfidence. Функция тотальна и не ошибается.
func Confidence(hue float64, stage int) float64 {
	md, ok := stageMetadata[stage]
	if !ok {
		return NeutralConfidence
	}

	halfWidth := (md.HueMax - md.HueMin) / 2
	if halfWidth == 0 {
		return MaxConfidence
	}

	center := (md.HueMin + md.HueMax) / 2
	confidence := 1.0 - math.Abs(hue-center)/halfWidth

	if confidence < MinConfidence {
		return MinConfidence
	}
	if confidence > MaxConfidence {
		return MaxConfidence
	}
	return confidence
}
