package service

import (
	"context"

	"github.com/google/uuid"

	"inkwell-backend/internal/domains/group"
	"inkwell-backend/internal/domains/post"
	"inkwell-backend/internal/domains/user"
	"inkwell-backend/internal/shared/feed"
)

// PostService owns post writes and feed composition.
type PostService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, form post.PostForm, image *post.ImageUpload) (*post.Post, error)
	EditPost(ctx context.Context, postID int64, actorID uuid.UUID, form post.PostForm, image *post.ImageUpload) (*post.Post, error)
	GetPost(ctx context.Context, id int64) (*post.Post, error)

	IndexFeed(ctx context.Context, page int) (feed.Page[post.Post], error)
	GroupFeed(ctx context.Context, slug string, page int) (*group.Group, feed.Page[post.Post], error)
	AuthorFeed(ctx context.Context, username string, page int) (*user.User, feed.Page[post.Post], error)
	FollowFeed(ctx context.Context, userID uuid.UUID, page int) (feed.Page[post.Post], error)

	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}
