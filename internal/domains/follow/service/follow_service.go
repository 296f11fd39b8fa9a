package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"inkwell-backend/internal/domains/follow"
	followrepo "inkwell-backend/internal/domains/follow/repository"
	"inkwell-backend/internal/domains/user"
	userrepo "inkwell-backend/internal/domains/user/repository"
)

type followService struct {
	followRepo followrepo.FollowRepository
	userRepo   userrepo.UserRepository
}

func NewFollowService(followRepo followrepo.FollowRepository, userRepo userrepo.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) Follow(ctx context.Context, userID uuid.UUID, username string) error {
	author, err := s.resolveAuthor(ctx, username)
	if err != nil {
		return err
	}

	if author.ID == userID {
		return follow.ErrSelfFollow
	}

	return s.followRepo.Create(ctx, userID, author.ID)
}

func (s *followService) Unfollow(ctx context.Context, userID uuid.UUID, username string) error {
	author, err := s.resolveAuthor(ctx, username)
	if err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, userID, author.ID)
}

func (s *followService) IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}

func (s *followService) resolveAuthor(ctx context.Context, username string) (*user.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, follow.ErrAuthorNotFound
		}
		return nil, err
	}
	return author, nil
}
