package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell-backend/internal/domains/comment"
	"inkwell-backend/pkg/database"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	// Existence check and insert share one transaction so the comment
	// can never land on a post deleted in between.
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, c.PostID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check post: %w", err)
		}
		if !exists {
			return comment.ErrPostNotFound
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO comments (post_id, author_id, text)
			 VALUES ($1, $2, $3)
			 RETURNING id, created_at`,
			c.PostID, c.Author.ID, c.Text,
		).Scan(&c.ID, &c.Created)
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		return nil
	})
}

func (r *postgresCommentRepository) ListByPost(ctx context.Context, postID int64) ([]comment.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.text, c.created_at, u.id, u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at, c.id
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []comment.Comment{}
	for rows.Next() {
		var c comment.Comment
		err := rows.Scan(&c.ID, &c.PostID, &c.Text, &c.Created, &c.Author.ID, &c.Author.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}
