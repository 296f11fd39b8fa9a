package service

import (
	"context"

	"inkwell-backend/internal/domains/group"
	"inkwell-backend/internal/domains/group/repository"
	"inkwell-backend/internal/shared/utils"
)

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) Create(ctx context.Context, req group.CreateGroupRequest) (*group.Group, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	g := &group.Group{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.groupRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*group.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *groupService) UpdateDescription(ctx context.Context, slug, description string) (*group.Group, error) {
	if err := s.groupRepo.UpdateDescription(ctx, slug, description); err != nil {
		return nil, err
	}
	return s.groupRepo.GetBySlug(ctx, slug)
}
