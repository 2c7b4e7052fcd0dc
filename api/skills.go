package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository"
)

type SkillsHandler struct {
	repo repository.SkillRepo
}

func NewSkillsHandler(sr repository.SkillRepo) *SkillsHandler {
	return &SkillsHandler{repo: sr}
}

var skillSchema = compileSchema(`{
	"type": "object",
	"properties": {
		"name": {"type": ["string", "null"]},
		"category": {"type": ["string", "null"]},
		"proficiency": {"type": ["integer", "null"]}
	}
}`)

type postSkillRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Proficiency *int64 `json:"proficiency"`
}

func (h *SkillsHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.repo.ListSkills(r.Context())
	if err != nil {
		internalError(w, r, "list skills", err)
		return
	}

	writeJSON(w, skills, http.StatusOK)
}

func (h *SkillsHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req postSkillRequest
	if !decodeJSON(w, r, skillSchema, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Name and category required")
		return
	}

	s := &models.Skill{Name: req.Name, Category: req.Category, Proficiency: models.DefaultProficiency}
	if req.Proficiency != nil {
		s.Proficiency = *req.Proficiency
	}

	id, err := h.repo.CreateSkill(r.Context(), s)
	if err != nil {
		internalError(w, r, "create skill", err)
		return
	}

	writeJSON(w, messageResponse{Message: "Skill created", ID: &id}, http.StatusCreated)
}

func (h *SkillsHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.repo.DeleteSkill(r.Context(), id); err != nil {
		internalError(w, r, "delete skill", err)
		return
	}

	writeJSON(w, messageResponse{Message: "Skill deleted"}, http.StatusOK)
}

// pathID parses the {id} route variable. The route pattern only admits
// digits, so a failure here means the value overflows int64 and is answered
// like any other unknown route.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}
