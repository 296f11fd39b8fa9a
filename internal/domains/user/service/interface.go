package service

import (
	"context"

	"github.com/google/uuid"

	"inkwell-backend/internal/domains/user"
)

// UserService is the identity provider boundary: registration, login,
// current-user lookups.
type UserService interface {
	Register(ctx context.Context, req user.RegisterRequest) (*user.LoginResponse, error)
	Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}
