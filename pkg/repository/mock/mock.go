// Package mock provides in-memory repository doubles for handler tests.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/garnizeh/folio/pkg/models"
	"github.com/garnizeh/folio/pkg/repository"
)

var _ repository.Store = (*Store)(nil)

// Store keeps every entity in memory and mirrors the ordering of the SQLite
// implementation. Setting one of the *Err fields makes the matching
// operations fail with that error.
type Store struct {
	mu sync.Mutex

	Profile  *models.Profile
	Skills   []models.Skill
	Projects []models.Project
	Messages []models.Message

	ProfileErr error
	SkillErr   error
	ProjectErr error
	MessageErr error

	nextID    int64
	lastStamp time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (m *Store) id() int64 {
	m.nextID++
	return m.nextID
}

// now never repeats, so rows created back to back still sort newest first.
func (m *Store) now() models.Timestamp {
	ts := models.Now()
	if !ts.After(m.lastStamp) {
		ts = models.NewTimestamp(m.lastStamp.Add(time.Microsecond))
	}
	m.lastStamp = ts.Time
	return ts
}

func (m *Store) GetProfile(ctx context.Context) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	if m.Profile == nil {
		return nil, nil
	}
	p := *m.Profile
	return &p, nil
}

func (m *Store) UpdateProfile(ctx context.Context, p *models.Profile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProfileErr != nil {
		return false, m.ProfileErr
	}
	if m.Profile == nil {
		return false, nil
	}
	cp := *p
	cp.ID = 1
	m.Profile = &cp
	return true, nil
}

func (m *Store) ListSkills(ctx context.Context) ([]models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SkillErr != nil {
		return nil, m.SkillErr
	}
	out := append([]models.Skill{}, m.Skills...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Proficiency != out[j].Proficiency {
			return out[i].Proficiency > out[j].Proficiency
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Store) CreateSkill(ctx context.Context, s *models.Skill) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SkillErr != nil {
		return 0, m.SkillErr
	}
	cp := *s
	cp.ID = m.id()
	m.Skills = append(m.Skills, cp)
	return cp.ID, nil
}

func (m *Store) DeleteSkill(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SkillErr != nil {
		return m.SkillErr
	}
	for i := range m.Skills {
		if m.Skills[i].ID == id {
			m.Skills = append(m.Skills[:i], m.Skills[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProjectErr != nil {
		return nil, m.ProjectErr
	}
	out := append([]models.Project{}, m.Projects...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt.Time) {
			return out[i].CreatedAt.After(out[j].CreatedAt.Time)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Store) CreateProject(ctx context.Context, p *models.Project) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProjectErr != nil {
		return 0, m.ProjectErr
	}
	cp := *p
	cp.ID = m.id()
	cp.CreatedAt = m.now()
	m.Projects = append(m.Projects, cp)
	return cp.ID, nil
}

func (m *Store) DeleteProject(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProjectErr != nil {
		return m.ProjectErr
	}
	for i := range m.Projects {
		if m.Projects[i].ID == id {
			m.Projects = append(m.Projects[:i], m.Projects[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Store) ListMessages(ctx context.Context) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MessageErr != nil {
		return nil, m.MessageErr
	}
	out := append([]models.Message{}, m.Messages...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt.Time) {
			return out[i].CreatedAt.After(out[j].CreatedAt.Time)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Store) CreateMessage(ctx context.Context, msg *models.Message) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MessageErr != nil {
		return 0, m.MessageErr
	}
	cp := *msg
	cp.ID = m.id()
	cp.CreatedAt = m.now()
	m.Messages = append(m.Messages, cp)
	return cp.ID, nil
}

func (m *Store) DeleteMessage(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MessageErr != nil {
		return m.MessageErr
	}
	for i := range m.Messages {
		if m.Messages[i].ID == id {
			m.Messages = append(m.Messages[:i], m.Messages[i+1:]...)
			break
		}
	}
	return nil
}
