package ripeness

import "banana-ripeness-go/internal/color"

// DefaultStage стадия по умолчанию для оттенков вне известных диапазонов
const DefaultStage = 3

// hueClause один диапазон классификации: [Low, High) либо [Low, High] при HighInclusive
type hueClause struct {
	Low           float64
	High          float64
	HighInclusive bool
	Stage         int
}

// classificationOrder упорядоченный список диапазонов классификации.
// Порядок проверки является частью контракта: побеждает первый подходящий
// диапазон, поэтому переупорядочивание меняет поведение на пересечениях
// границ. Стадия 5 при таком порядке недостижима через классификацию,
// но сохраняет собственные метаданные (см. stageMetadata).
var classificationOrder = []hueClause{
	{Low: 60, High: 120, HighInclusive: true, Stage: 1}, // Green
	{Low: 45, High: 60, Stage: 2},                       // Light Green
	{Low: 35, High: 45, Stage: 3},                       // Yellowish
	{Low: 25, High: 35, Stage: 4},                       // More Yellow
	{Low: 20, High: 25, Stage: 6},                       // Yellow
	{Low: 0, High: 20, Stage: 7},                        // Brown Flecks
}

// StageForHue определяет стадию спелости по оттенку в градусах.
// Оттенок предварительно нормализуется к диапазону [0, 360). Диапазоны
// проверяются линейно в фиксированном порядке; если ни один не подошел,
// возвращается стадия по умолчанию (3). Функция тотальна и не ошибается.
func StageForHue(hue float64) int {
	h := color.NormalizeHue(hue)

	for _, clause := range classificationOrder {
		if h < clause.Low {
			continue
		}
		if h < clause.High || (clause.HighInclusive && h == clause.High) {
			return clause.Stage
		}
	}

	return DefaultStage
}
