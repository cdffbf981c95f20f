package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgateway/fsgateway/internal/api/middleware"
	"github.com/fsgateway/fsgateway/internal/logging"
	"github.com/fsgateway/fsgateway/internal/monitoring"
	"github.com/fsgateway/fsgateway/internal/providers/gateway"
	"github.com/fsgateway/fsgateway/internal/providers/system"
	"github.com/fsgateway/fsgateway/internal/service"
)

var testMetrics = monitoring.NewMetrics()

func newTestRouter(t *testing.T, roots, extensions []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(gateway.NewProvider(gateway.NewOps(roots, extensions, nil))))
	require.NoError(t, registry.Register(system.NewProvider()))

	handlers := NewHandlers(registry, testMetrics, logging.NewDefault())

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	return router
}

func postExecute(t *testing.T, router *gin.Engine, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/services/execute", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func TestRoot(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "online", out["status"])
	assert.Equal(t, "fsgateway", out["service"])
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "healthy", out["status"])
	assert.Contains(t, out, "service_registry")
}

func TestListServices(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	req := httptest.NewRequest("GET", "/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Services []struct {
			ID string `json:"id"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	ids := make(map[string]bool)
	for _, s := range out.Services {
		ids[s.ID] = true
	}
	assert.True(t, ids["gateway"])
	assert.True(t, ids["system"])
}

func TestExecuteReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	router := newTestRouter(t, []string{dir}, []string{".txt"})

	code, out := postExecute(t, router, map[string]interface{}{
		"tool_id": "gateway.read",
		"params":  map[string]interface{}{"path": path},
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, out["success"])
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "hi", data["content"])
}

func TestExecuteAccessDeniedStillHTTP200(t *testing.T) {
	dir := t.TempDir()
	router := newTestRouter(t, []string{dir}, []string{".txt"})

	code, out := postExecute(t, router, map[string]interface{}{
		"tool_id": "gateway.read",
		"params":  map[string]interface{}{"path": "/etc/passwd"},
	})

	// Failures travel in the result body, never the status code.
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, out["success"])
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "access_denied", data["code"])
}

func TestExecuteUnknownService(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	code, out := postExecute(t, router, map[string]interface{}{
		"tool_id": "nope.tool",
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, out["success"])
}

func TestExecuteMissingToolID(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	code, _ := postExecute(t, router, map[string]interface{}{
		"params": map[string]interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, code)
}
