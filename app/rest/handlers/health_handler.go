package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stayin/app/port"
)

var startTime = time.Now()

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	readiness port.ReadinessReader
	logger    *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(readiness port.ReadinessReader, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		readiness: readiness,
		logger:    logger,
	}
}

// HealthCheck performs a basic health check
// @Summary Health check
// @Description Check if the service is healthy and running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "stayin-session",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck reports whether the startup join has settled. The
// splash surface stays up until this endpoint flips to ready.
// @Summary Readiness check
// @Description Check if all startup tasks have settled
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /v1/ready [get]
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	gate := h.readiness.Gate()

	checks := map[string]HealthStatus{
		"session": taskStatus(gate.SessionResolved),
		"store":   taskStatus(gate.LocalStoreOpen),
		"assets":  taskStatus(gate.AssetsLoaded),
	}

	ready := gate.Ready()
	response := ReadinessResponse{
		Status:    getOverallStatus(ready),
		Timestamp: time.Now(),
		Service:   "stayin-session",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// LivenessCheck performs a liveness check
// @Summary Liveness check
// @Description Check if the service is alive
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/live [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "stayin-session",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// Helper functions

func taskStatus(settled bool) HealthStatus {
	if settled {
		return HealthStatus{Status: "settled"}
	}
	return HealthStatus{Status: "pending"}
}

func getOverallStatus(ready bool) string {
	if ready {
		return "ready"
	}
	return "not_ready"
}

// Response types

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
