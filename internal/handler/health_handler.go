package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"billboard/internal/metrics"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db         Pinger
	poolStats  metrics.PoolStatsProvider
	imageStore string
}

// NewHealthHandler creates a new HealthHandler. poolStats may be nil.
func NewHealthHandler(db Pinger, poolStats metrics.PoolStatsProvider, imageStore string) *HealthHandler {
	return &HealthHandler{db: db, poolStats: poolStats, imageStore: imageStore}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	services := map[string]string{
		"database":    "healthy",
		"image_store": h.imageStore,
	}

	if h.poolStats != nil {
		metrics.LogPoolStats(ctx, h.poolStats)
	}

	if err := h.db.Ping(ctx); err != nil {
		services["database"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
