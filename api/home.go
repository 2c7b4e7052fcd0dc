package api

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository"
)

// HomeHandler renders the landing page from the same data the JSON API serves.
type HomeHandler struct {
	profiles repository.ProfileRepo
	skills   repository.SkillRepo
	projects repository.ProjectRepo
	tmpl     *template.Template
}

func NewHomeHandler(pr repository.ProfileRepo, sr repository.SkillRepo, prj repository.ProjectRepo, tmpl *template.Template) *HomeHandler {
	return &HomeHandler{profiles: pr, skills: sr, projects: prj, tmpl: tmpl}
}

type profileView struct {
	Name, Title, Bio, Email, GitHub, LinkedIn string
}

type homeView struct {
	Profile  *profileView
	Skills   []models.Skill
	Projects []models.Project
	Year     int
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.profiles.GetProfile(ctx)
	if err != nil {
		internalError(w, r, "home: get profile", err)
		return
	}
	skills, err := h.skills.ListSkills(ctx)
	if err != nil {
		internalError(w, r, "home: list skills", err)
		return
	}
	projects, err := h.projects.ListProjects(ctx)
	if err != nil {
		internalError(w, r, "home: list projects", err)
		return
	}

	view := homeView{Skills: skills, Projects: projects, Year: time.Now().Year()}
	if p != nil {
		view.Profile = &profileView{
			Name:     models.Deref(p.Name),
			Title:    models.Deref(p.Title),
			Bio:      models.Deref(p.Bio),
			Email:    models.Deref(p.Email),
			GitHub:   models.Deref(p.GitHub),
			LinkedIn: models.Deref(p.LinkedIn),
		}
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", view); err != nil {
		internalError(w, r, "home: render", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
