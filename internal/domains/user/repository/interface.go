package repository

import (
	"context"

	"github.com/google/uuid"

	"inkwell-backend/internal/domains/user"
)

// UserRepository is the data access contract for authors.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
