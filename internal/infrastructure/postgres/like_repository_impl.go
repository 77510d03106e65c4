package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
	"github.com/homelyhq/homely-backend/internal/domain/repository"
)

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

// Toggle flips the like state for a (property, user) pair in a single
// statement. The first interaction inserts liked=true; after that the
// conflict arm negates the stored value in place. Because the whole
// read-modify-write happens inside one statement on the unique key,
// concurrent toggles for the same pair serialize in the database instead
// of losing updates.
func (r *LikeRepository) Toggle(ctx context.Context, propertyID, userID int64) (*entity.PropertyLike, error) {
	like := &entity.PropertyLike{PropertyID: propertyID, UserID: userID}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO property_likes (property_id, user_id, liked)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (property_id, user_id)
		DO UPDATE SET liked = NOT property_likes.liked, updated_at = now()
		RETURNING liked
	`, propertyID, userID).Scan(&like.Liked)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return like, nil
}

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
