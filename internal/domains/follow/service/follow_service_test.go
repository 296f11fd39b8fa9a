package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"inkwell-backend/internal/domains/follow"
	"inkwell-backend/internal/domains/user"
)

type pair struct {
	userID   uuid.UUID
	authorID uuid.UUID
}

type fakeFollowRepo struct {
	edges map[pair]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[pair]bool{}}
}

func (r *fakeFollowRepo) Create(_ context.Context, userID, authorID uuid.UUID) error {
	key := pair{userID, authorID}
	if r.edges[key] {
		return follow.ErrAlreadyFollowing
	}
	r.edges[key] = true
	return nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, userID, authorID uuid.UUID) error {
	delete(r.edges, pair{userID, authorID})
	return nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, userID, authorID uuid.UUID) (bool, error) {
	return r.edges[pair{userID, authorID}], nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func TestFollow(t *testing.T) {
	ctx := context.Background()

	reader := &user.User{ID: uuid.New(), Username: "reader"}
	author := &user.User{ID: uuid.New(), Username: "author"}

	setup := func() (FollowService, *fakeFollowRepo) {
		repo := newFakeFollowRepo()
		users := &fakeUserRepo{users: map[string]*user.User{
			"reader": reader,
			"author": author,
		}}
		return NewFollowService(repo, users), repo
	}

	t.Run("follow creates the edge", func(t *testing.T) {
		svc, _ := setup()

		require.NoError(t, svc.Follow(ctx, reader.ID, "author"))

		following, err := svc.IsFollowing(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		require.True(t, following)
	})

	t.Run("self follow is rejected", func(t *testing.T) {
		svc, repo := setup()

		err := svc.Follow(ctx, reader.ID, "reader")
		require.ErrorIs(t, err, follow.ErrSelfFollow)
		require.Empty(t, repo.edges)
	})

	t.Run("duplicate follow conflicts", func(t *testing.T) {
		svc, _ := setup()

		require.NoError(t, svc.Follow(ctx, reader.ID, "author"))
		err := svc.Follow(ctx, reader.ID, "author")
		require.ErrorIs(t, err, follow.ErrAlreadyFollowing)
	})

	t.Run("unknown author", func(t *testing.T) {
		svc, _ := setup()

		err := svc.Follow(ctx, reader.ID, "ghost")
		require.ErrorIs(t, err, follow.ErrAuthorNotFound)
	})
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()

	reader := &user.User{ID: uuid.New(), Username: "reader"}
	author := &user.User{ID: uuid.New(), Username: "author"}

	setup := func() FollowService {
		repo := newFakeFollowRepo()
		users := &fakeUserRepo{users: map[string]*user.User{
			"reader": reader,
			"author": author,
		}}
		return NewFollowService(repo, users)
	}

	t.Run("unfollow removes the edge", func(t *testing.T) {
		svc := setup()

		require.NoError(t, svc.Follow(ctx, reader.ID, "author"))
		require.NoError(t, svc.Unfollow(ctx, reader.ID, "author"))

		following, err := svc.IsFollowing(ctx, reader.ID, author.ID)
		require.NoError(t, err)
		require.False(t, following)
	})

	t.Run("unfollow without a follow is a no-op", func(t *testing.T) {
		svc := setup()

		require.NoError(t, svc.Unfollow(ctx, reader.ID, "author"))
	})

	t.Run("unknown author", func(t *testing.T) {
		svc := setup()

		err := svc.Unfollow(ctx, reader.ID, "ghost")
		require.ErrorIs(t, err, follow.ErrAuthorNotFound)
	})
}
