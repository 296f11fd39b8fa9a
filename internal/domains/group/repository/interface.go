package repository

import (
	"context"

	"inkwell-backend/internal/domains/group"
)

// GroupRepository is the data access contract for groups.
type GroupRepository interface {
	Create(ctx context.Context, g *group.Group) error
	GetBySlug(ctx context.Context, slug string) (*group.Group, error)
	UpdateDescription(ctx context.Context, slug, description string) error
}
