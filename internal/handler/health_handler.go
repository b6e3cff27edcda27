package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StoreStatus reports the last known connectivity of the entity store.
type StoreStatus interface {
	IsAvailable() bool
	LastError() string
	CheckedAt() time.Time
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	store       StoreStatus
	environment string
	now         func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store StoreStatus, environment string) *HealthHandler {
	return &HealthHandler{
		store:       store,
		environment: environment,
		now:         time.Now,
	}
}

// HealthResponse represents the response of the detailed health endpoint.
type HealthResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Timestamp   string            `json:"timestamp"`
	Environment string            `json:"environment"`
	Version     string            `json:"version"`
	Services    map[string]string `json:"services"`
	LastCheck   string            `json:"lastCheck,omitempty"`
	StoreError  string            `json:"storeError,omitempty"`
}

// Root handles GET / - service banner for platform probes.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": ServiceName,
		"status":  "running",
		"version": ServiceVersion,
	})
}

// Health handles GET /health - plain liveness text that never touches the store.
func (h *HealthHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Detailed handles GET /health/detailed - reports store connectivity.
func (h *HealthHandler) Detailed(c *gin.Context) {
	state := "disconnected"
	if h.store.IsAvailable() {
		state = "connected"
	}

	resp := HealthResponse{
		Success:     true,
		Message:     ServiceName + " is running",
		Timestamp:   h.now().UTC().Format(TimeFormat),
		Environment: h.environment,
		Version:     ServiceVersion,
		Services:    map[string]string{"database": state},
		StoreError:  h.store.LastError(),
	}
	if checked := h.store.CheckedAt(); !checked.IsZero() {
		resp.LastCheck = checked.UTC().Format(TimeFormat)
	}

	c.JSON(http.StatusOK, resp)
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.store.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
