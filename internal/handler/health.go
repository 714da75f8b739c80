package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

// Pinger is anything that can verify a backing dependency, typically the
// database pool.
type Pinger interface {
	Ping() error
}

// Health exposes liveness and readiness probes.
type Health struct {
	service string
	version string
	pingers map[string]Pinger
}

// NewHealth creates the health handler. pingers maps dependency names to
// their checks; pass none when running against in-memory storage.
func NewHealth(service, version string, pingers map[string]Pinger) *Health {
	return &Health{service: service, version: version, pingers: pingers}
}

// Register mounts the probe routes at the group root.
func (h *Health) Register(rg *gin.RouterGroup) {
	rg.GET("/health", h.Live)
	rg.GET("/ready", h.Ready)
}

// Live handles GET /health.
func (h *Health) Live(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status":    "ok",
		"service":   h.service,
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}))
}

// Ready handles GET /ready, checking every registered dependency.
func (h *Health) Ready(c *gin.Context) {
	checks := make(map[string]string, len(h.pingers))
	healthy := true

	for name, pinger := range h.pingers {
		if err := pinger.Ping(); err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.ErrorWithDetails(
			response.ErrCodeServiceUnavailable, "Dependency check failed", checks))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"status": "ready", "checks": checks}))
}
