package domain

import "context"

// Project carries the card-level columns shown on the projects page.
type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	TechStack        []string `json:"tech_stack"`
	LiveURL          *string  `json:"live_url"`
	ThumbnailURL     *string  `json:"thumbnail_url"`
}

// ProjectDetail adds the columns only the detail page fetches.
type ProjectDetail struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	LongDescription  *string  `json:"long_description"`
	TechStack        []string `json:"tech_stack"`
	LiveURL          *string  `json:"live_url"`
	GithubURL        *string  `json:"github_url"`
	ThumbnailURL     *string  `json:"thumbnail_url"`
}

type ProjectRepository interface {
	Fetch(ctx context.Context) ([]Project, error)
	// GetByID returns ErrNotFound when no project has that id.
	GetByID(ctx context.Context, id string) (*ProjectDetail, error)
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*ProjectDetail, error)
}
