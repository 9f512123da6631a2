package postgres

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactMessageRepo struct {
	db *pgxpool.Pool
}

func NewContactMessageRepository(db *pgxpool.Pool) domain.ContactMessageRepository {
	return &contactMessageRepo{db: db}
}

func (r *contactMessageRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message, service_type)
              VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.ServiceType,
	).Scan(&msg.ID, &msg.CreatedAt)
}
