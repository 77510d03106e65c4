package repository

import (
	"context"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
)

// ContactRepository is append-only; no read path exists through the API.
type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
}
