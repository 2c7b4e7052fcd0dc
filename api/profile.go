package api

import (
	"log/slog"
	"net/http"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository"
)

type ProfileHandler struct {
	repo repository.ProfileRepo
}

func NewProfileHandler(pr repository.ProfileRepo) *ProfileHandler {
	return &ProfileHandler{repo: pr}
}

var profileSchema = compileSchema(`{
	"type": "object",
	"properties": {
		"name": {"type": ["string", "null"]},
		"title": {"type": ["string", "null"]},
		"bio": {"type": ["string", "null"]},
		"email": {"type": ["string", "null"]},
		"github": {"type": ["string", "null"]},
		"linkedin": {"type": ["string", "null"]}
	}
}`)

// putProfileRequest is a full replacement: absent keys clear the stored value.
type putProfileRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	Email    *string `json:"email"`
	GitHub   *string `json:"github"`
	LinkedIn *string `json:"linkedin"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.GetProfile(r.Context())
	if err != nil {
		internalError(w, r, "get profile", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	writeJSON(w, p, http.StatusOK)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req putProfileRequest
	if !decodeJSON(w, r, profileSchema, &req) {
		return
	}

	p := &models.Profile{
		Name:     req.Name,
		Title:    req.Title,
		Bio:      req.Bio,
		Email:    req.Email,
		GitHub:   req.GitHub,
		LinkedIn: req.LinkedIn,
	}
	matched, err := h.repo.UpdateProfile(r.Context(), p)
	if err != nil {
		internalError(w, r, "update profile", err)
		return
	}
	if !matched {
		logger.Warn("profile update matched no row",
			slog.String("request_id", RequestIDFromContext(r.Context())),
		)
	}

	writeJSON(w, messageResponse{Message: "Profile updated"}, http.StatusOK)
}
