package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Profile is the singleton record describing the portfolio owner. Every field
// is nullable because updates replace the whole row.
type Profile struct {
	ID       int64   `json:"id" db:"id"`
	Name     *string `json:"name" db:"name"`
	Title    *string `json:"title" db:"title"`
	Bio      *string `json:"bio" db:"bio"`
	Email    *string `json:"email" db:"email"`
	GitHub   *string `json:"github" db:"github"`
	LinkedIn *string `json:"linkedin" db:"linkedin"`
}

type Skill struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Category    string `json:"category" db:"category"`
	Proficiency int64  `json:"proficiency" db:"proficiency"`
}

// DefaultProficiency is stored when a skill is created without one.
const DefaultProficiency = 80

type Project struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Technologies string    `json:"technologies" db:"technologies"`
	GitHubLink   string    `json:"github_link" db:"github_link"`
	LiveLink     string    `json:"live_link" db:"live_link"`
	CreatedAt    Timestamp `json:"created_at" db:"created_at"`
}

type Message struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt Timestamp `json:"created_at" db:"created_at"`
}

// StringPtr returns a pointer to a copy of s. Handy for building profiles from
// literals.
func StringPtr(s string) *string {
	return &s
}

// Deref returns the pointed string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
