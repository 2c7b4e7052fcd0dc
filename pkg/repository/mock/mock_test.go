package mock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository/mock"
)

func TestListProjects_TiesKeepInsertOrder(t *testing.T) {
	stamp := models.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	s := mock.NewStore()
	s.Projects = []models.Project{
		{ID: 1, Title: "first", CreatedAt: stamp},
		{ID: 2, Title: "second", CreatedAt: stamp},
		{ID: 3, Title: "third", CreatedAt: stamp},
	}

	got, err := s.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"first", "second", "third"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestCreateMessage_BackToBackNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := mock.NewStore()

	var ids []int64
	for i := 0; i < 5; i++ {
		id, err := s.CreateMessage(ctx, &models.Message{Name: "n", Email: "e@example.com", Message: "m"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	got, err := s.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, m := range got {
		require.Equal(t, ids[len(ids)-1-i], m.ID)
	}
}
