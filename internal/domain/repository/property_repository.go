package repository

import (
	"context"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
)

// PropertyRepository defines listing reads and the single insert path.
// There is deliberately no update or delete: listings are immutable.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	GetByID(ctx context.Context, id int64) (*entity.Property, error)
	List(ctx context.Context) ([]entity.Property, error)
}

// LikeRepository persists the per-pair like state.
type LikeRepository interface {
	// Toggle atomically creates the pair's row with liked=true, or flips the
	// existing row in place, and returns the resulting state.
	Toggle(ctx context.Context, propertyID, userID int64) (*entity.PropertyLike, error)
}
