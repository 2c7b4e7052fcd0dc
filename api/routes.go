package api

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/folio/internal/config"
	"github.com/garnizeh/folio/internal/metrics"
	"github.com/garnizeh/folio/pkg/repository"
)

// SetupRoutes wires every endpoint onto a mux router and wraps it in the
// middleware chain. CORS, logging and recovery sit outside the router so that
// preflight and unmatched requests pass through them too.
func SetupRoutes(cfg *config.Config, version, buildTime string, store repository.Store, tmpl *template.Template) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	if cfg.MetricsEnabled {
		m := metrics.New()
		r.Use(m.Middleware)
		r.Handle("/metrics", m.Handler()).Methods("GET")
	}

	// Create handlers
	systemHandler := &SystemHandler{MetricsEnabled: cfg.MetricsEnabled}
	profileHandler := NewProfileHandler(store)
	skillsHandler := NewSkillsHandler(store)
	projectsHandler := NewProjectsHandler(store)
	messagesHandler := NewMessagesHandler(store)

	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	if tmpl != nil {
		homeHandler := NewHomeHandler(store, store, store, tmpl)
		r.HandleFunc("/", homeHandler.Index).Methods("GET")
	}

	apiR := r.PathPrefix("/api").Subrouter()
	apiR.HandleFunc("", systemHandler.APIDocsHandler).Methods("GET")

	apiR.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	apiR.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")

	apiR.HandleFunc("/skills", skillsHandler.ListSkills).Methods("GET")
	apiR.HandleFunc("/skills", skillsHandler.CreateSkill).Methods("POST")
	apiR.HandleFunc("/skills/{id:[0-9]+}", skillsHandler.DeleteSkill).Methods("DELETE")

	apiR.HandleFunc("/projects", projectsHandler.ListProjects).Methods("GET")
	apiR.HandleFunc("/projects", projectsHandler.CreateProject).Methods("POST")
	apiR.HandleFunc("/projects/{id:[0-9]+}", projectsHandler.DeleteProject).Methods("DELETE")

	apiR.HandleFunc("/messages", messagesHandler.ListMessages).Methods("GET")
	apiR.HandleFunc("/messages", messagesHandler.CreateMessage).Methods("POST")
	apiR.HandleFunc("/messages/{id:[0-9]+}", messagesHandler.DeleteMessage).Methods("DELETE")

	// Middleware chain
	var h http.Handler = r
	h = CORSMiddleware(h)
	h = RecoveryMiddleware(h)
	h = LoggingMiddleware(h)
	h = RequestIDMiddleware(h)
	return h
}
