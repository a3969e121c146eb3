package handlers

import (
	"net/http"
	"time"

	"github.com/feedbackhub/feedback-backend/types"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and which storage backend is active, so a
// degraded (in-memory fallback) deployment is visible to operators.
type HealthHandler struct {
	storageMode string
	version     string
	startTime   time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(storageMode, version string) *HealthHandler {
	return &HealthHandler{
		storageMode: storageMode,
		version:     version,
		startTime:   time.Now(),
	}
}

// LivenessCheck handles kubernetes liveness probes.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Health reports service status. The in-memory fallback counts as degraded:
// the service works, but submissions are lost on restart.
func (h *HealthHandler) Health(c *gin.Context) {
	status := types.HealthStatusUp
	if h.storageMode != "postgres" {
		status = types.HealthStatusDegraded
	}

	c.JSON(http.StatusOK, types.HealthCheck{
		Status:      status,
		StorageMode: h.storageMode,
		Version:     h.version,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
	})
}
