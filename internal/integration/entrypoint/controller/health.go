// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func() bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    HealthChecker
	cacheHealthChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil cache
// checker means the lookup cache runs in process.
func NewHealthController(dbHealthChecker, cacheHealthChecker HealthChecker) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
	}
}

// Check handles GET /health requests.
// The service is degraded when the database is unreachable; a shared cache
// outage only slows catalog lookups down.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "disconnected",
		Cache:     "in-process",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	statusCode := http.StatusOK

	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		response.Database = "connected"
	} else {
		response.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	if h.cacheHealthChecker != nil {
		response.Cache = "disconnected"
		if h.cacheHealthChecker() {
			response.Cache = "connected"
		}
	}

	c.JSON(statusCode, response)
}
