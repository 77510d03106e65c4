package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
	"github.com/homelyhq/homely-backend/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, m *entity.ContactMessage) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, m.Name, m.Email, m.Message)

	return row.Scan(&m.ID, &m.CreatedAt)
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
