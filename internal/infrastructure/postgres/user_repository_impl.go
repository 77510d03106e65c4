package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
	"github.com/homelyhq/homely-backend/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	// NULLIF keeps the unique constraint on email meaningful: absent
	// emails are stored as NULL, not as colliding empty strings.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password, name)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING id, created_at
	`, u.Username, u.Email, u.Password, u.Name)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, username, COALESCE(email, ''), password, COALESCE(name, ''), created_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) GetByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, username, COALESCE(email, ''), password, COALESCE(name, ''), created_at
		FROM users
		WHERE username = $1 OR email = $1
	`, usernameOrEmail))
}

func (r *UserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE username = $1
			   OR ($2 <> '' AND (email = $2 OR username = $2))
			   OR ($1 <> '' AND email = $1)
		)
	`, username, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
