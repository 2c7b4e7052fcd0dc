package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository/mock"
)

func TestCreateProject_Defaults(t *testing.T) {
	h := newHandler(t, mock.NewStore())

	w := do(h, http.MethodPost, "/api/projects", `{"title":"X","description":null,"extra":"ignored"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[msgBody](t, w)
	assert.Equal(t, "Project created", created.Message)

	projects := decode[[]models.Project](t, do(h, http.MethodGet, "/api/projects", ""))
	require.Len(t, projects, 1)
	p := projects[0]
	assert.Equal(t, created.ID, p.ID)
	assert.Equal(t, "X", p.Title)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, "", p.Technologies)
	assert.Equal(t, "", p.GitHubLink)
	assert.Equal(t, "", p.LiveLink)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreateProject_Validation(t *testing.T) {
	h := newHandler(t, mock.NewStore())

	for _, body := range []string{`{}`, `{"title":""}`, `{"description":"no title"}`} {
		w := do(h, http.MethodPost, "/api/projects", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"Title required"}`, w.Body.String())
	}

	w := do(h, http.MethodPost, "/api/projects", `{"title":["x"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode[errBody](t, w).Error)
}

func TestListProjects_NewestFirst(t *testing.T) {
	h := newHandler(t, mock.NewStore())

	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		w := do(h, http.MethodPost, "/api/projects", fmt.Sprintf(`{"title":%q}`, title))
		require.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, decode[msgBody](t, w).ID)
	}

	projects := decode[[]models.Project](t, do(h, http.MethodGet, "/api/projects", ""))
	require.Len(t, projects, 3)
	assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{projects[0].ID, projects[1].ID, projects[2].ID})

	w := do(h, http.MethodDelete, fmt.Sprintf("/api/projects/%d", ids[1]), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Project deleted"}`, w.Body.String())

	w = do(h, http.MethodDelete, fmt.Sprintf("/api/projects/%d", ids[1]), "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, decode[[]models.Project](t, do(h, http.MethodGet, "/api/projects", "")), 2)
}

func TestProjects_StoreErrors(t *testing.T) {
	store := mock.NewStore()
	store.ProjectErr = assert.AnError
	h := newHandler(t, store)

	assert.Equal(t, http.StatusInternalServerError, do(h, http.MethodGet, "/api/projects", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(h, http.MethodPost, "/api/projects", `{"title":"X"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, do(h, http.MethodDelete, "/api/projects/1", "").Code)
}
