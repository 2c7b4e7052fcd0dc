package api

import (
	"maps"
	"net/http"
	"time"
)

// SystemHandler serves process-level endpoints. MetricsEnabled controls
// whether /metrics is listed in the endpoint document.
type SystemHandler struct {
	MetricsEnabled bool
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler does not touch the store; it only reports that the process serves requests.
func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{Status: "healthy", Timestamp: time.Now().UTC().Format(time.RFC3339)}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": version, "buildTime": buildTime}, http.StatusOK)
	}
}

type apiDocs struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

var baseEndpoints = map[string]string{
	"GET /health":               "Health check",
	"GET /version":              "Build version",
	"GET /api":                  "This document",
	"GET /api/profile":          "Get profile",
	"PUT /api/profile":          "Update profile",
	"GET /api/skills":           "List skills",
	"POST /api/skills":          "Create skill",
	"DELETE /api/skills/{id}":   "Delete skill",
	"GET /api/projects":         "List projects",
	"POST /api/projects":        "Create project",
	"DELETE /api/projects/{id}": "Delete project",
	"GET /api/messages":         "List messages",
	"POST /api/messages":        "Send message",
	"DELETE /api/messages/{id}": "Delete message",
}

func (h *SystemHandler) docs() apiDocs {
	endpoints := maps.Clone(baseEndpoints)
	if h.MetricsEnabled {
		endpoints["GET /metrics"] = "Prometheus metrics"
	}
	return apiDocs{Name: "Portfolio API", Version: "1.0", Endpoints: endpoints}
}

// APIDocsHandler serves the endpoint listing for the routes actually mounted.
func (h *SystemHandler) APIDocsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.docs(), http.StatusOK)
}
