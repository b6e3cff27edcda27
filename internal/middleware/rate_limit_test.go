package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-api/internal/metrics"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	// Near-zero refill so only the burst is available during the test.
	router.Use(RateLimit(0.0001, 3))
	router.GET("/api/articles", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	before := testutil.ToFloat64(metrics.HTTPRateLimitedTotal)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, send("10.0.0.1").Code, "request %d within burst", i)
	}

	w := send("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, RateLimitMessage, body["message"])
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRateLimitedTotal))

	// Other clients keep their own budget.
	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}

func TestLimiterCache_ResetsWhenFull(t *testing.T) {
	cache := newLimiterCache(1, 1, 3)

	for i := 0; i < 3; i++ {
		cache.get(fmt.Sprintf("client-%d", i))
	}
	assert.Equal(t, 3, cache.size())

	first := cache.get("client-0")
	assert.Same(t, first, cache.get("client-0"), "existing limiter is reused")

	cache.get("client-3")
	assert.Equal(t, 1, cache.size(), "cache is reset before exceeding its bound")
}
