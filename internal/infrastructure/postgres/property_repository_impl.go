package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
	"github.com/homelyhq/homely-backend/internal/domain/repository"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (title, description, price, location, image, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.Title, p.Description, p.Price, p.Location, p.Image, p.Address)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	p := &entity.Property{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, price, location, image, address, created_at
		FROM properties
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price,
		&p.Location, &p.Image, &p.Address, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, price, location, image, address, created_at
		FROM properties
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Property, 0)
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price,
			&p.Location, &p.Image, &p.Address, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
