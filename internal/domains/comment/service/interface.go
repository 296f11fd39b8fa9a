package service

import (
	"context"

	"github.com/google/uuid"

	"inkwell-backend/internal/domains/comment"
)

type CommentService interface {
	CreateComment(ctx context.Context, postID int64, authorID uuid.UUID, form comment.CommentForm) (*comment.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]comment.Comment, error)
}
