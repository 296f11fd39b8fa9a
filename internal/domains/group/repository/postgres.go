package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell-backend/internal/domains/group"
)

type postgresGroupRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresGroupRepository(pool *pgxpool.Pool) GroupRepository {
	return &postgresGroupRepository{pool: pool}
}

func (r *postgresGroupRepository) Create(ctx context.Context, g *group.Group) error {
	query := `
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, g.Title, g.Slug, g.Description).
		Scan(&g.ID, &g.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return group.ErrSlugAlreadyExists
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

func (r *postgresGroupRepository) GetBySlug(ctx context.Context, slug string) (*group.Group, error) {
	query := `
		SELECT id, title, slug, description, created_at
		FROM groups
		WHERE slug = $1
	`

	g := &group.Group{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&g.ID,
		&g.Title,
		&g.Slug,
		&g.Description,
		&g.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, group.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

func (r *postgresGroupRepository) UpdateDescription(ctx context.Context, slug, description string) error {
	query := `UPDATE groups SET description = $2 WHERE slug = $1`

	result, err := r.pool.Exec(ctx, query, slug, description)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	if result.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}
