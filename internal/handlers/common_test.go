package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gob-digital/app-rut/internal/config"
	"github.com/gob-digital/app-rut/internal/logging"
)

var (
	testSetupOnce testingSetup
)

type testingSetup struct {
	once sync.Once
	err  error
}

// setupTestEnvironment initializes config and logging once for the package
func setupTestEnvironment(t *testing.T) {
	t.Helper()
	testSetupOnce.once.Do(func() {
		gin.SetMode(gin.TestMode)
		os.Unsetenv("RUT_MIN_NUMBER")
		os.Unsetenv("RUT_MAX_NUMBER")
		if err := logging.InitLogger(); err != nil {
			testSetupOnce.err = err
			return
		}
		testSetupOnce.err = config.LoadConfig()
	})
	if testSetupOnce.err != nil {
		t.Fatalf("failed to set up test environment: %v", testSetupOnce.err)
	}
}

// newTestRouter builds a router with the same routes cmd/api registers
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	setupTestEnvironment(t)

	router := gin.New()
	v1 := router.Group("/v1")
	{
		v1.GET("/health", HealthCheck)
		v1.POST("/rut/validate", ValidateRUT)
		v1.POST("/rut/format", FormatRUT)
		v1.GET("/rut/check-digit/:number", GetCheckDigit)
		v1.GET("/rut/decompose/:rut", DecomposeRUT)
	}
	return router
}

// doJSON performs a request with a JSON body and decodes the JSON response
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if out != nil && w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
