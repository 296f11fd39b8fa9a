package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell-backend/internal/domains/group"
)

type fakeGroupRepo struct {
	groups map[string]*group.Group
	nextID int64
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: map[string]*group.Group{}, nextID: 1}
}

func (r *fakeGroupRepo) Create(_ context.Context, g *group.Group) error {
	if _, ok := r.groups[g.Slug]; ok {
		return group.ErrSlugAlreadyExists
	}
	g.ID = r.nextID
	r.nextID++
	r.groups[g.Slug] = g
	return nil
}

func (r *fakeGroupRepo) GetBySlug(_ context.Context, slug string) (*group.Group, error) {
	g, ok := r.groups[slug]
	if !ok {
		return nil, group.ErrGroupNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) UpdateDescription(_ context.Context, slug, description string) error {
	g, ok := r.groups[slug]
	if !ok {
		return group.ErrGroupNotFound
	}
	g.Description = description
	return nil
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit slug is kept", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo())

		g, err := svc.Create(ctx, group.CreateGroupRequest{Title: "Cats", Slug: "felines"})
		require.NoError(t, err)
		require.Equal(t, "felines", g.Slug)
	})

	t.Run("slug generated from title", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo())

		g, err := svc.Create(ctx, group.CreateGroupRequest{Title: "Street Photography 101"})
		require.NoError(t, err)
		require.Equal(t, "street-photography-101", g.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo())

		_, err := svc.Create(ctx, group.CreateGroupRequest{Title: "Cats"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, group.CreateGroupRequest{Title: "Cats"})
		require.ErrorIs(t, err, group.ErrSlugAlreadyExists)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		svc := NewGroupService(newFakeGroupRepo())

		_, err := svc.Create(ctx, group.CreateGroupRequest{Slug: "no-title"})
		require.Error(t, err)
	})
}

func TestUpdateDescription(t *testing.T) {
	ctx := context.Background()
	svc := NewGroupService(newFakeGroupRepo())

	_, err := svc.Create(ctx, group.CreateGroupRequest{Title: "Cats", Description: "old"})
	require.NoError(t, err)

	g, err := svc.UpdateDescription(ctx, "cats", "new description")
	require.NoError(t, err)
	require.Equal(t, "new description", g.Description)

	_, err = svc.UpdateDescription(ctx, "missing", "x")
	require.ErrorIs(t, err, group.ErrGroupNotFound)
}
