package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/garnizeh/folio/pkg/models"
)

// Initialize creates the schema and seeds default content into an empty store.
// It is safe to call on every start.
func Initialize(ctx context.Context, d *DB, migrationFS fs.FS, seedFS fs.FS) error {
	if err := Migrate(ctx, d, migrationFS); err != nil {
		return err
	}
	if _, err := Seed(ctx, d, seedFS); err != nil {
		return err
	}
	return nil
}

// Migrate executes every .sql file under migrations/ in lexical order. The
// files only contain CREATE ... IF NOT EXISTS statements, so there is no
// version bookkeeping.
func Migrate(ctx context.Context, d *DB, migrationFS fs.FS) error {
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		b, err := fs.ReadFile(migrationFS, path.Join(migDir, fname))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}
	}

	return nil
}

// SeedData is the shape of seed/defaults.yaml.
type SeedData struct {
	Profile  seedProfile   `yaml:"profile"`
	Skills   []seedSkill   `yaml:"skills"`
	Projects []seedProject `yaml:"projects"`
}

type seedProfile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Bio      string `yaml:"bio"`
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

type seedSkill struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Proficiency int64  `yaml:"proficiency"`
}

type seedProject struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Technologies string `yaml:"technologies"`
	GitHubLink   string `yaml:"github_link"`
	LiveLink     string `yaml:"live_link"`
}

// LoadSeed parses seed/defaults.yaml from seedFS.
func LoadSeed(seedFS fs.FS) (*SeedData, error) {
	b, err := fs.ReadFile(seedFS, path.Join("seed", "defaults.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if data.Profile.Name == "" || data.Profile.Title == "" {
		return nil, fmt.Errorf("seed profile requires name and title")
	}

	return &data, nil
}

// Seed inserts the default profile, skills and projects when the profile
// table is empty. It reports whether anything was written.
func Seed(ctx context.Context, d *DB, seedFS fs.FS) (bool, error) {
	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(*) FROM profile`).Scan(&count); err != nil {
		return false, fmt.Errorf("count profile rows: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	data, err := LoadSeed(seedFS)
	if err != nil {
		return false, err
	}

	err = d.WithTx(ctx, func(tx *sqlx.Tx) error {
		p := data.Profile
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profile (id, name, title, bio, email, github, linkedin) VALUES (1, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Title, p.Bio, p.Email, p.GitHub, p.LinkedIn,
		); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}

		for _, s := range data.Skills {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO skills (name, category, proficiency) VALUES (?, ?, ?)`,
				s.Name, s.Category, s.Proficiency,
			); err != nil {
				return fmt.Errorf("seed skill %s: %w", s.Name, err)
			}
		}

		created := models.Now()
		for _, pr := range data.Projects {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO projects (title, description, technologies, github_link, live_link, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
				pr.Title, pr.Description, pr.Technologies, pr.GitHubLink, pr.LiveLink, created,
			); err != nil {
				return fmt.Errorf("seed project %s: %w", pr.Title, err)
			}
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	d.logger.Info("seeded empty store",
		slog.Int("skills", len(data.Skills)),
		slog.Int("projects", len(data.Projects)),
	)
	return true, nil
}
