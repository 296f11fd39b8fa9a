package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inkwell-backend/internal/domains/user"
	"inkwell-backend/internal/domains/user/repository"
	"inkwell-backend/pkg/jwt"
)

type userService struct {
	userRepo    repository.UserRepository
	jwtManager  *jwt.Manager
	tokenExpiry time.Duration
}

func NewUserService(userRepo repository.UserRepository, jwtManager *jwt.Manager, tokenExpiry time.Duration) UserService {
	return &userService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		tokenExpiry: tokenExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == user.ErrUserNotFound {
			// Same error as a bad password, no account enumeration.
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueToken(u)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) issueToken(u *user.User) (*user.LoginResponse, error) {
	token, err := s.jwtManager.Generate(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.tokenExpiry),
		User:        u.ToDTO(),
	}, nil
}
