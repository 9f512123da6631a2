package postgres

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type serviceRepo struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) domain.ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) Fetch(ctx context.Context) ([]domain.Service, error) {
	query := `SELECT id, title, slug, description FROM services ORDER BY title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Description); err != nil {
			return nil, err
		}
		// Icon is resolved here, at the decode boundary, so unknown slugs
		// can never surface as a render-time lookup failure.
		if s.Slug != nil {
			s.Icon = domain.IconForSlug(*s.Slug)
		} else {
			s.Icon = domain.IconDefault
		}
		services = append(services, s)
	}
	return services, rows.Err()
}
