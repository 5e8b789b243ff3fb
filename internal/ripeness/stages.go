package ripeness

import "banana-ripeness-go/pkg/models"

// PeakStage стадия пика спелости банана
const PeakStage = 6

// MinStage и MaxStage границы допустимых стадий спелости
const (
	MinStage = 1
	MaxStage = 7
)

// StageMetadata содержит неизменяемые характеристики стадии спелости
type StageMetadata struct {
	Description     string   // Описание стадии
	MinDays         int      // Минимальная длительность стадии в днях
	MaxDays         int      // Максимальная длительность стадии в днях
	HueMin          float64  // Нижняя граница оттенка стадии в градусах
	HueMax          float64  // Верхняя граница оттенка стадии в градусах
	Recommendations []string // Рекомендации по использованию
}

// stageMetadata таблица характеристик стадий спелости по шкале USDA.
// Загружается один раз при старте процесса и никогда не изменяется.
var stageMetadata = map[int]StageMetadata{
	1: {
		Description: "Green - Entirely green, firm and starchy. High in resistant starch.",
		MinDays: 1, MaxDays: 4,
		HueMin: 60, HueMax: 120,
		Recommendations: []string{
			"Wait 3-4 days for optimal ripeness",
			"Store at room temperature",
			"Avoid refrigeration at this stage",
			"Perfect for cooking if you prefer less sweet bananas",
		},
	},
	2: {
		Description: "Light Green - Breaking toward yellow. Still firm and less sweet.",
		MinDays: 1, MaxDays: 3,
		HueMin: 45, HueMax: 60,
		Recommendations: []string{
			"Wait 2-3 days for better sweetness",
			"Store at room temperature",
			"Good for cooking or eating if you prefer less sweet",
		},
	},
	3: {
		Description: "Yellowish - Minimal green. Begins to develop sweetness.",
		MinDays: 1, MaxDays: 3,
		HueMin: 35, HueMax: 45,
		Recommendations: []string{
			"Wait 1-2 days for peak ripeness",
			"Good for eating now if you prefer less sweet",
			"Perfect for cooking",
		},
	},
	4: {
		Description: "More Yellow - Mostly yellow with some green. Starches converting to sugars.",
		MinDays: 1, MaxDays: 3,
		HueMin: 25, HueMax: 35,
		Recommendations: []string{
			"Wait 1 day for optimal sweetness",
			"Good for eating now",
			"Great for smoothies",
		},
	},
	5: {
		Description: "Yellow with Green Tips - Ideal for retail. Peak for purchase.",
		MinDays: 1, MaxDays: 3,
		HueMin: 25, HueMax: 30,
		Recommendations: []string{
			"Perfect for purchase and eating",
			"Peak retail stage",
			"Good for 1-2 days",
		},
	},
	6: {
		Description: "Yellow - Peak eating quality. Aromatic and sweet.",
		MinDays: 1, MaxDays: 3,
		HueMin: 20, HueMax: 25,
		Recommendations: []string{
			"Peak eating quality!",
			"Best for fresh consumption",
			"Use within 1-2 days",
			"Perfect for smoothies",
		},
	},
	7: {
		Description: "Yellow with Brown Flecks - Overripe. Best for baking or smoothies.",
		MinDays: 2, MaxDays: 5,
		HueMin: 0, HueMax: 20,
		Recommendations: []string{
			"Excellent for baking banana bread",
			"Perfect for smoothies and shakes",
			"Great for natural sweetener in baking",
			"Freeze for future use",
		},
	},
}

// Общие значения для неизвестной стадии
const (
	unknownDescription = "Unknown stage"
)

var unknownRecommendations = []string{"Unable to provide recommendations"}

// Metadata возвращает характеристики стадии спелости
func Metadata(stage int) (StageMetadata, bool) {
	md, ok := stageMetadata[stage]
	return md, ok
}

// StageCatalog возвращает характеристики всех стадий по порядку созревания
func StageCatalog() []models.StageDetails {
	catalog := make([]models.StageDetails, 0, MaxStage)
	for stage := MinStage; stage <= MaxStage; stage++ {
		md := stageMetadata[stage]
		catalog = append(catalog, models.StageDetails{
			Stage:           stage,
			Description:     md.Description,
			HueMin:          md.HueMin,
			HueMax:          md.HueMax,
			MinDays:         md.MinDays,
			MaxDays:         md.MaxDays,
			Recommendations: append([]string(nil), md.Recommendations...),
		})
	}
	return catalog
}
