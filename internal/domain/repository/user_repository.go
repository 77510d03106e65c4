package repository

import (
	"context"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByLogin looks a user up by username or email, whichever matches.
	GetByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error)
	// Exists reports whether a user already claims the username or the email.
	Exists(ctx context.Context, username, email string) (bool, error)
}
