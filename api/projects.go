package api

import (
	"net/http"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository"
)

type ProjectsHandler struct {
	repo repository.ProjectRepo
}

func NewProjectsHandler(pr repository.ProjectRepo) *ProjectsHandler {
	return &ProjectsHandler{repo: pr}
}

var projectSchema = compileSchema(`{
	"type": "object",
	"properties": {
		"title": {"type": ["string", "null"]},
		"description": {"type": ["string", "null"]},
		"technologies": {"type": ["string", "null"]},
		"github_link": {"type": ["string", "null"]},
		"live_link": {"type": ["string", "null"]}
	}
}`)

// Optional fields decode null or absent values to "".
type postProjectRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	GitHubLink   string `json:"github_link"`
	LiveLink     string `json:"live_link"`
}

func (h *ProjectsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.ListProjects(r.Context())
	if err != nil {
		internalError(w, r, "list projects", err)
		return
	}

	writeJSON(w, projects, http.StatusOK)
}

func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req postProjectRequest
	if !decodeJSON(w, r, projectSchema, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Title required")
		return
	}

	p := &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		GitHubLink:   req.GitHubLink,
		LiveLink:     req.LiveLink,
	}
	id, err := h.repo.CreateProject(r.Context(), p)
	if err != nil {
		internalError(w, r, "create project", err)
		return
	}

	writeJSON(w, messageResponse{Message: "Project created", ID: &id}, http.StatusCreated)
}

func (h *ProjectsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.repo.DeleteProject(r.Context(), id); err != nil {
		internalError(w, r, "delete project", err)
		return
	}

	writeJSON(w, messageResponse{Message: "Project deleted"}, http.StatusOK)
}
