package postgres

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name, category, level FROM skills ORDER BY category, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

type timelineRepo struct {
	db *pgxpool.Pool
}

func NewTimelineRepository(db *pgxpool.Pool) domain.TimelineRepository {
	return &timelineRepo{db: db}
}

func (r *timelineRepo) Fetch(ctx context.Context) ([]domain.TimelineEvent, error) {
	query := `SELECT id, year, title, description FROM timeline_events ORDER BY year DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.TimelineEvent
	for rows.Next() {
		var e domain.TimelineEvent
		if err := rows.Scan(&e.ID, &e.Year, &e.Title, &e.Description); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
