package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vowsmith/planner/internal/models"
	"github.com/vowsmith/planner/internal/timeline"
)

// HealthChecker handles health check requests
type HealthChecker struct {
	gen *timeline.Generator
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(gen *timeline.Generator) *HealthChecker {
	return &HealthChecker{gen: gen}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if mode == "extended" {
		checks := make(map[string]string)

		// The service has no external collaborators; the extended check
		// exercises the generation pipeline end to end instead
		if err := h.checkEngine(); err != nil {
			response.Status = "unhealthy"
			checks["engine"] = "unhealthy: " + err.Error()
		} else {
			checks["engine"] = "healthy"
		}

		response.Checks = checks

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(response)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// checkEngine runs a generation over the default preferences and confirms
// the engine still yields a schedule and a diagram.
func (h *HealthChecker) checkEngine() error {
	events := h.gen.Generate(models.DefaultPreferences())
	if len(events) == 0 {
		return errEmptySchedule
	}
	if timeline.Diagram("healthcheck", "", events) == "" {
		return errEmptyDiagram
	}
	return nil
}

var (
	errEmptySchedule = healthErr("generation produced no events")
	errEmptyDiagram  = healthErr("serializer produced empty diagram")
)

type healthErr string

func (e healthErr) Error() string { return string(e) }
