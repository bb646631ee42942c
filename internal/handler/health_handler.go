package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pvpit/gatepass-api/internal/service"
)

// HealthHandler exposes liveness, readiness and metrics endpoints.
type HealthHandler struct {
	metrics *service.MetricsService
}

// NewHealthHandler constructs a health handler.
func NewHealthHandler(metrics *service.MetricsService) *HealthHandler {
	return &HealthHandler{metrics: metrics}
}

// RegisterRoutes wires the probe routes. None of them require auth.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/metrics", h.Prometheus)
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"server":    "gatepass-api",
		"database":  "firestore",
	})
}

// Ready responds once the process is wired and serving.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Prometheus serves the metrics registry.
func (h *HealthHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
