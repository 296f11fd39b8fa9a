package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell-backend/internal/domains/follow"
)

type postgresFollowRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFollowRepository(pool *pgxpool.Pool) FollowRepository {
	return &postgresFollowRepository{pool: pool}
}

func (r *postgresFollowRepository) Create(ctx context.Context, userID, authorID uuid.UUID) error {
	// ON CONFLICT DO NOTHING keeps concurrent duplicate requests from
	// racing past the unique constraint; a zero row count means the edge
	// was already there.
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO follows (user_id, author_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, author_id) DO NOTHING`,
		userID, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return follow.ErrAlreadyFollowing
	}
	return nil
}

func (r *postgresFollowRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE user_id = $1 AND author_id = $2`,
		userID, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

func (r *postgresFollowRepository) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`,
		userID, authorID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return exists, nil
}
