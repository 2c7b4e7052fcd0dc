package repository

import (
	"context"

	"github.com/garnizeh/folio/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
// Lookups of a missing row return (nil, nil).

type ProfileRepo interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	// UpdateProfile replaces every field of the singleton profile and reports
	// whether a row existed to update.
	UpdateProfile(ctx context.Context, p *models.Profile) (bool, error)
}

type SkillRepo interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, s *models.Skill) (int64, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type ProjectRepo interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) (int64, error)
	DeleteProject(ctx context.Context, id int64) error
}

type MessageRepo interface {
	ListMessages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, m *models.Message) (int64, error)
	DeleteMessage(ctx context.Context, id int64) error
}

// Store is everything the HTTP layer needs.
type Store interface {
	ProfileRepo
	SkillRepo
	ProjectRepo
	MessageRepo
}
