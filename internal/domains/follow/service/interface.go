package service

import (
	"context"

	"github.com/google/uuid"
)

type FollowService interface {
	// Follow subscribes userID to the author behind username.
	Follow(ctx context.Context, userID uuid.UUID, username string) error

	// Unfollow removes the subscription. Unfollowing an author the user
	// never followed succeeds silently.
	Unfollow(ctx context.Context, userID uuid.UUID, username string) error

	IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}
