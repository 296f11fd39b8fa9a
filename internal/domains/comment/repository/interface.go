package repository

import (
	"context"

	"inkwell-backend/internal/domains/comment"
)

// CommentRepository is the data access contract for comments.
type CommentRepository interface {
	// Create verifies the post exists and inserts the comment inside a
	// single transaction.
	Create(ctx context.Context, c *comment.Comment) error

	// ListByPost returns all comments for a post, oldest first.
	ListByPost(ctx context.Context, postID int64) ([]comment.Comment, error)
}
