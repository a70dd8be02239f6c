package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"marketdeck/internal/repository"
	"marketdeck/internal/services"
	"marketdeck/internal/validator"
)

var registerOnce sync.Once

// setupRouter builds a test router with the full route table wired to
// mock-backed services without simulated latency.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	registerOnce.Do(validator.Register)

	repo := repository.NewMockRepository(repository.MockConfig{})
	assetHandler := NewAssetHandler(services.NewAssetService(repo))
	searchHandler := NewSearchHandler(services.NewAssetService(repo))
	marketHandler := NewMarketHandler(services.NewMarketService())
	importHandler := NewImportHandler(services.NewImportService())

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/assets", assetHandler.ListAssets)
	v1.GET("/assets/categories", assetHandler.GetCategoryCounts)
	v1.GET("/assets/:id", assetHandler.GetAsset)
	v1.GET("/search", searchHandler.Search)
	v1.GET("/markets/summary", marketHandler.Summary)
	v1.POST("/import", importHandler.ImportPortfolio)
	v1.GET("/import/template", importHandler.DownloadTemplate)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, router, http.MethodGet, path, nil, "")
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	return doRequest(t, router, method, path, bytes.NewReader(raw), "application/json")
}

// multipartBody builds a multipart form with the given form values and an
// optional file part named "file".
func multipartBody(t *testing.T, fields map[string]string, filename, fileContent string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write([]byte(fileContent)); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
	return body
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body: %s)", want, w.Code, w.Body.String())
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assertStatus(t, w, status)
	body := parseJSON(t, w)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected an error envelope, got %s", w.Body.String())
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %v", code, errObj["code"])
	}
}
