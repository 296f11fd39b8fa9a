package service

import (
	"context"

	"inkwell-backend/internal/domains/group"
)

type GroupService interface {
	Create(ctx context.Context, req group.CreateGroupRequest) (*group.Group, error)
	GetBySlug(ctx context.Context, slug string) (*group.Group, error)
	UpdateDescription(ctx context.Context, slug, description string) (*group.Group, error)
}
