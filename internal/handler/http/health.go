// Package http provides HTTP handlers and middleware for the event
// extraction service. It includes the extraction and export endpoints,
// health check endpoints, metrics collection, and middleware components.
package http

import (
	"net/http"
	"time"

	"sendtocal/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// HealthHandler handles health check endpoint requests.
// The service has no persistence; the only dependency worth reporting is
// the extractor configuration.
type HealthHandler struct {
	Version string

	// Provider is the active extractor provider name.
	Provider string

	// Configured reports whether the provider has a credential. The noop
	// provider needs none and is always considered configured.
	Configured bool
}

// ServeHTTP reports the application health status.
// Returns 200 OK if the extractor is usable, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)

	extractorCheck := CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"provider": h.Provider,
		},
	}
	if !h.Configured {
		extractorCheck.Status = "unhealthy"
		extractorCheck.Message = "api key is not configured"
	}
	checks["extractor"] = extractorCheck

	status := "healthy"
	code := http.StatusOK
	if extractorCheck.Status != "healthy" {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// LiveHandler handles liveness probe requests.
// It always returns 200 OK while the process is able to serve requests.
func LiveHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
