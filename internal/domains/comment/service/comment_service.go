package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"inkwell-backend/internal/domains/comment"
	"inkwell-backend/internal/domains/comment/repository"
)

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) CreateComment(ctx context.Context, postID int64, authorID uuid.UUID, form comment.CommentForm) (*comment.Comment, error) {
	if strings.TrimSpace(form.Text) == "" {
		return nil, comment.ErrEmptyText
	}

	c := &comment.Comment{
		PostID: postID,
		Author: comment.Author{ID: authorID},
		Text:   form.Text,
	}

	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]comment.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
