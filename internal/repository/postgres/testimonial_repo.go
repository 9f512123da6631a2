package postgres

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type testimonialRepo struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) domain.TestimonialRepository {
	return &testimonialRepo{db: db}
}

func (r *testimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `INSERT INTO testimonials (author_name, author_role, content)
              VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		t.AuthorName, t.AuthorRole, t.Content,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *testimonialRepo) Fetch(ctx context.Context) ([]domain.Testimonial, error) {
	query := `SELECT id, author_name, author_role, content, created_at
              FROM testimonials ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.AuthorName, &t.AuthorRole, &t.Content, &t.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
