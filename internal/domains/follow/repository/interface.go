package repository

import (
	"context"

	"github.com/google/uuid"
)

type FollowRepository interface {
	// Create inserts the edge. Returns follow.ErrAlreadyFollowing when the
	// pair already exists.
	Create(ctx context.Context, userID, authorID uuid.UUID) error

	// Delete removes the edge if present. Deleting a missing edge is not
	// an error.
	Delete(ctx context.Context, userID, authorID uuid.UUID) error

	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}
