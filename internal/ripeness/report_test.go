package ripeness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	report := BuildReport(90, 1)

	assert.Equal(t, 1, report.Stage)
	assert.Equal(t, "Stage 1", report.Level)
	assert.Contains(t, report.Description, "Green")
	assert.InDelta(t, 90, report.DominantHue, 0.0001)
	assert.Equal(t, 10, report.DaysUntilPeak)
	assert.InDelta(t, MaxConfidence, report.Confidence, 0.0001)
	assert.NotEmpty(t, report.Recommendations)
}

func TestBuildReportPeakStage(t *testing.T) {
	report := BuildReport(22.5, 6)

	assert.Equal(t, 6, report.Stage)
	assert.Equal(t, 0, report.DaysUntilPeak)
	assert.InDelta(t, MaxConfidence, report.Confidence, 0.0001)
}

func TestBuildReportUnknownStage(t *testing.T) {
	// Защитный путь: стадия вне таблицы получает общие описание и рекомендации
	report := BuildReport(200, 42)

	assert.Equal(t, 42, report.Stage)
	assert.Equal(t, "Unknown stage", report.Description)
	assert.Equal(t, NeutralConfidence, report.Confidence)
	assert.Equal(t, []string{"Unable to provide recommendations"}, report.Recommendations)
}

func TestUnknownReport(t *testing.T) {
	report := UnknownReport()

	assert.Equal(t, 0, report.Stage)
	assert.Equal(t, "Unknown", report.Level)
	assert.Equal(t, 0.0, report.Confidence)
	assert.Equal(t, 0, report.DaysUntilPeak)
	assert.NotEmpty(t, report.Recommendations)
}

func TestStageCatalogComplete(t *testing.T) {
	catalog := StageCatalog()

	assert.Len(t, catalog, MaxStage)
	for i, details := range catalog {
		assert.Equal(t, i+1, details.Stage)
		assert.NotEmpty(t, details.Description)
		assert.NotEmpty(t, details.Recommendations)
		assert.GreaterOrEqual(t, details.HueMax, details.HueMin)
		assert.GreaterOrEqual(t, details.MaxDays, details.MinDays)
	}
}
