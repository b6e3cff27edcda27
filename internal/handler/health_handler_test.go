package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	available bool
	lastErr   string
	checkedAt time.Time
}

func (s *stubStore) IsAvailable() bool    { return s.available }
func (s *stubStore) LastError() string    { return s.lastErr }
func (s *stubStore) CheckedAt() time.Time { return s.checkedAt }

func newHealthRouter(store StoreStatus) *gin.Engine {
	h := NewHealthHandler(store, "test")
	h.now = func() time.Time { return time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC) }

	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/api/health", h.Health)
	router.GET("/api/health/detailed", h.Detailed)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealth_PlainOKWithoutStore(t *testing.T) {
	router := newHealthRouter(&stubStore{available: false})

	w := doGet(router, "/api/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRoot(t *testing.T) {
	router := newHealthRouter(&stubStore{})

	w := doGet(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"service":"Content API","status":"running","version":"1.0.0"}`, w.Body.String())
}

func TestDetailed(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		checked := time.Date(2024, 12, 15, 11, 59, 50, 0, time.UTC)
		router := newHealthRouter(&stubStore{available: true, checkedAt: checked})

		w := doGet(router, "/api/health/detailed")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "connected", resp.Services["database"])
		assert.Equal(t, "test", resp.Environment)
		assert.Equal(t, "2024-12-15T12:00:00Z", resp.Timestamp)
		assert.Equal(t, "2024-12-15T11:59:50Z", resp.LastCheck)
		assert.Empty(t, resp.StoreError)
	})

	t.Run("disconnected still answers 200", func(t *testing.T) {
		router := newHealthRouter(&stubStore{available: false, lastErr: "connection refused"})

		w := doGet(router, "/api/health/detailed")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "disconnected", resp.Services["database"])
		assert.Equal(t, "connection refused", resp.StoreError)
		assert.Empty(t, resp.LastCheck)
	})
}

func TestReadyAndLive(t *testing.T) {
	up := newHealthRouter(&stubStore{available: true})
	down := newHealthRouter(&stubStore{available: false})

	assert.Equal(t, http.StatusOK, doGet(up, "/ready").Code)
	assert.Equal(t, http.StatusServiceUnavailable, doGet(down, "/ready").Code)
	assert.Equal(t, http.StatusOK, doGet(down, "/live").Code)
}
