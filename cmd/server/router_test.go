package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-api/internal/config"
	"content-api/internal/domain"
	"content-api/internal/health"
	"content-api/internal/middleware"
	"content-api/internal/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		APIPrefix:      "/api",
		Env:            "test",
		CORSOrigins:    []string{"http://localhost:3000"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRouter_ProbesWorkWithoutStore(t *testing.T) {
	content := mocks.NewMockContentServiceInterface(t)
	monitor := health.NewMonitor(time.Second)

	router, err := newRouter(testConfig(), content, monitor)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(t, router, "/").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/live").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, router, "/ready").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/metrics").Code)

	w := get(t, router, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = get(t, router, "/api/health/detailed")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"disconnected"`)
}

func TestRouter_ContentGatedOnStore(t *testing.T) {
	content := mocks.NewMockContentServiceInterface(t)
	monitor := health.NewMonitor(time.Second)

	router, err := newRouter(testConfig(), content, monitor)
	require.NoError(t, err)

	w := get(t, router, "/api/articles")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, middleware.StoreUnavailableMessage, body["message"])

	monitor.MarkConnected()
	content.EXPECT().ListCategories(mock.Anything).Return([]domain.Category{}, nil)

	w = get(t, router, "/api/categories")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouter_RoutesUnderPrefix(t *testing.T) {
	content := mocks.NewMockContentServiceInterface(t)
	monitor := health.NewMonitor(time.Second)
	monitor.MarkConnected()

	cfg := testConfig()
	cfg.APIPrefix = "/v2"
	router, err := newRouter(cfg, content, monitor)
	require.NoError(t, err)

	content.EXPECT().AllSlugs(mock.Anything).Return(nil, nil)
	assert.Equal(t, http.StatusOK, get(t, router, "/v2/articles/slugs").Code)

	w := get(t, router, "/api/articles/slugs")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route /api/articles/slugs not found")
}

func TestRouter_InvalidTrustedProxies(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxies = []string{"not-a-cidr"}

	_, err := newRouter(cfg, mocks.NewMockContentServiceInterface(t), health.NewMonitor(time.Second))
	require.Error(t, err)
}
