package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Fetch(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT id, title, short_description, tech_stack, live_url, thumbnail_url
              FROM projects ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.ShortDescription, &p.TechStack, &p.LiveURL, &p.ThumbnailURL); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.ProjectDetail, error) {
	query := `SELECT id, title, short_description, long_description, tech_stack, live_url, github_url, thumbnail_url
              FROM projects WHERE id = $1`

	var p domain.ProjectDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.ShortDescription, &p.LongDescription,
		&p.TechStack, &p.LiveURL, &p.GithubURL, &p.ThumbnailURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
