package repository

import (
	"context"

	"github.com/google/uuid"

	"inkwell-backend/internal/domains/post"
)

// PostRepository is the data access contract for posts.
type PostRepository interface {
	// Create inserts the post; the database assigns id and pub_date.
	Create(ctx context.Context, p *post.Post) error

	// GetByID returns the post with author and group resolved.
	GetByID(ctx context.Context, id int64) (*post.Post, error)

	// Update replaces text, group and image. Author and pub_date are
	// never touched.
	Update(ctx context.Context, p *post.Post) error

	// List returns one page of posts matching the filter, newest first
	// (pub_date desc, id desc), plus the total match count.
	List(ctx context.Context, f post.Filter, limit, offset int) ([]post.Post, int, error)

	// ListFollowed returns one page of posts by authors the user follows.
	ListFollowed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]post.Post, int, error)

	// CountByAuthor returns the author's total post count.
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}
