package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency the health endpoint can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck names a probed dependency. Only critical failures make the service unhealthy.
type HealthCheck struct {
	Name     string
	Pinger   Pinger
	Critical bool
}

// HealthHandler reports liveness of the service and its dependencies
type HealthHandler struct {
	checks  []HealthCheck
	timeout time.Duration
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(timeout time.Duration, checks ...HealthCheck) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandler{checks: checks, timeout: timeout}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := "ok"
	httpStatus := http.StatusOK
	components := make(map[string]string, len(h.checks))

	for _, check := range h.checks {
		if err := check.Pinger.Ping(ctx); err != nil {
			components[check.Name] = "down"
			if check.Critical {
				status = "down"
				httpStatus = http.StatusServiceUnavailable
			} else if status == "ok" {
				status = "degraded"
			}
			continue
		}
		components[check.Name] = "up"
	}

	c.JSON(httpStatus, gin.H{
		"status":     status,
		"components": components,
	})
}
