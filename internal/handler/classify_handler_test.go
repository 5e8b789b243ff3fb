package handler

import (
	"bytes"
	"encoding/json"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"banana-ripeness-go/internal/config"
	"banana-ripeness-go/internal/service"
	"banana-ripeness-go/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter собирает router с обработчиками и тихим логгером
func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if cfg == nil {
		cfg = config.LoadConfig()
	}

	classifierService := service.NewClassifierService(logger, cfg.Analysis.MaxImageDimension, cfg.Analysis.SampleStride)
	classifyHandler := NewClassifyHandler(classifierService, logger, cfg)

	router := gin.New()
	classifyHandler.RegisterRoutes(router)
	return router
}

// greenPNG создает сплошное зеленое PNG изображение
func greenPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.SetRGBA(x, y, stdcolor.RGBA{R: 0, G: 255, B: 0, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// multipartImage собирает multipart тело с файлом изображения
func multipartImage(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fileWriter, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fileWriter.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestClassifyImageUpload(t *testing.T) {
	router := newTestRouter(t, nil)

	body, contentType := multipartImage(t, "banana.png", greenPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var report models.RipenessReport
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))

	assert.Equal(t, 1, report.Stage)
	assert.InDelta(t, 120, report.DominantHue, 2)
	assert.NotEmpty(t, report.AnalysisID)
	assert.NotEmpty(t, report.Recommendations)
	assert.False(t, report.Fallback)
}

func TestClassifyHexColorJSON(t *testing.T) {
	router := newTestRouter(t, nil)

	payload := `{"color": "#00FF00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var report models.RipenessReport
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))

	assert.Equal(t, 1, report.Stage)
	assert.InDelta(t, 120, report.DominantHue, 0.5)
	assert.Equal(t, 10, report.DaysUntilPeak)
}

func TestClassifyHexColorForm(t *testing.T) {
	router := newTestRouter(t, nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("color", "FFE135"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var report models.RipenessReport
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))
	assert.GreaterOrEqual(t, report.Stage, 1)
	assert.LessOrEqual(t, report.Stage, 7)
}

func TestClassifyInvalidHexColor(t *testing.T) {
	router := newTestRouter(t, nil)

	payload := `{"color": "GGGGGG"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestClassifyMissingInput(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestClassifyRejectsDisallowedExtension(t *testing.T) {
	router := newTestRouter(t, nil)

	body, contentType := multipartImage(t, "banana.txt", []byte("not an image"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestClassifyRejectsOversizedFile(t *testing.T) {
	cfg := config.LoadConfig()
	cfg.Upload.MaxSizeBytes = 64 // искусственно маленький лимит
	router := newTestRouter(t, cfg)

	body, contentType := multipartImage(t, "banana.png", greenPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestClassifyRejectsUndecodableImage(t *testing.T) {
	router := newTestRouter(t, nil)

	body, contentType := multipartImage(t, "banana.png", []byte("corrupted bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDetectLegacyAbsorbsAnalysisFailure(t *testing.T) {
	// Legacy путь тотален: нераспознаваемое изображение дает
	// отчет-заглушку с нулевой стадией вместо ошибки
	router := newTestRouter(t, nil)

	body, contentType := multipartImage(t, "banana.png", []byte("corrupted bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var report models.RipenessReport
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))

	assert.Equal(t, 0, report.Stage)
	assert.Equal(t, "Unknown", report.Level)
	assert.Equal(t, 0.0, report.Confidence)
}

func TestDetectLegacyValidImage(t *testing.T) {
	router := newTestRouter(t, nil)

	body, contentType := multipartImage(t, "banana.png", greenPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", body)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var report models.RipenessReport
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Stage)
}

func TestListStages(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stages", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var response struct {
		Stages []models.StageDetails `json:"stages"`
		Total  int                   `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))

	assert.Equal(t, 7, response.Total)
	assert.Len(t, response.Stages, 7)
	assert.Equal(t, 1, response.Stages[0].Stage)
}

func TestGetStage(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stages/6", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var details models.StageDetails
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &details))
	assert.Equal(t, 6, details.Stage)
	assert.Contains(t, details.Description, "Peak eating quality")
}

func TestGetStageNotFound(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stages/9", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetStageInvalidFormat(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stages/abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCheckHealth(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
}
