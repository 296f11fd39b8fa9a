package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"inkwell-backend/internal/domains/group"
	"inkwell-backend/internal/domains/post"
	"inkwell-backend/internal/domains/user"
	"inkwell-backend/internal/infrastructure/storage"
)

type fakePostRepo struct {
	posts  map[int64]*post.Post
	nextID int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int64]*post.Post{}, nextID: 1}
}

func (r *fakePostRepo) Create(_ context.Context, p *post.Post) error {
	p.ID = r.nextID
	p.PubDate = time.Now()
	r.nextID++
	stored := *p
	r.posts[p.ID] = &stored
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *post.Post) error {
	stored, ok := r.posts[p.ID]
	if !ok {
		return post.ErrPostNotFound
	}
	stored.Text = p.Text
	stored.Group = p.Group
	stored.Image = p.Image
	return nil
}

func (r *fakePostRepo) List(_ context.Context, f post.Filter, limit, offset int) ([]post.Post, int, error) {
	var all []post.Post
	for _, p := range r.posts {
		if f.GroupID != nil && (p.Group == nil || p.Group.ID != *f.GroupID) {
			continue
		}
		if f.AuthorID != nil && p.Author.ID != *f.AuthorID {
			continue
		}
		all = append(all, *p)
	}
	return window(all, limit, offset), len(all), nil
}

func (r *fakePostRepo) ListFollowed(_ context.Context, _ uuid.UUID, limit, offset int) ([]post.Post, int, error) {
	return nil, 0, nil
}

func (r *fakePostRepo) CountByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	count := 0
	for _, p := range r.posts {
		if p.Author.ID == authorID {
			count++
		}
	}
	return count, nil
}

func window(items []post.Post, limit, offset int) []post.Post {
	if offset >= len(items) {
		return []post.Post{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

type fakeGroupRepo struct {
	groups map[string]*group.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *group.Group) error {
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

type fakeStorage struct {
	uploads map[string][]byte
	deleted []string
}

func (s *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if s.uploads == nil {
		s.uploads = map[string][]byte{}
	}
	s.uploads[key] = data
	return "http://storage.local/" + key, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func newTestService(t *testing.T) (PostService, *fakePostRepo, *fakeGroupRepo, *fakeUserRepo) {
	t.Helper()

	posts := newFakePostRepo()
	groups := &fakeGroupRepo{groups: map[string]*group.Group{
		"cats": {ID: 1, Title: "Cats", Slug: "cats"},
	}}
	users := &fakeUserRepo{users: map[string]*user.User{}}

	svc := NewPostService(posts, groups, users, &fakeStorage{}, storage.NewImageProcessor(), 10)
	return svc, posts, groups, users
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("creates post without group", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		p, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "hello"}, nil)
		require.NoError(t, err)
		require.Equal(t, "hello", p.Text)
		require.Equal(t, authorID, p.Author.ID)
		require.Nil(t, p.Group)
		require.False(t, p.PubDate.IsZero())
	})

	t.Run("creates post with group", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		p, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "meow", Group: "cats"}, nil)
		require.NoError(t, err)
		require.NotNil(t, p.Group)
		require.Equal(t, "cats", p.Group.Slug)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "   "}, nil)
		require.ErrorIs(t, err, post.ErrEmptyText)
	})

	t.Run("rejects unknown group", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "hi", Group: "dogs"}, nil)
		require.ErrorIs(t, err, group.ErrGroupNotFound)
	})
}

func TestEditPost(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	seed := func(t *testing.T, svc PostService) *post.Post {
		t.Helper()
		p, err := svc.CreatePost(ctx, owner, post.PostForm{Text: "original", Group: "cats"}, nil)
		require.NoError(t, err)
		return p
	}

	t.Run("owner can edit text and clear group", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		p := seed(t, svc)

		updated, err := svc.EditPost(ctx, p.ID, owner, post.PostForm{Text: "rewritten"}, nil)
		require.NoError(t, err)
		require.Equal(t, "rewritten", updated.Text)
		require.Nil(t, updated.Group)
	})

	t.Run("author survives edit", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		p := seed(t, svc)

		updated, err := svc.EditPost(ctx, p.ID, owner, post.PostForm{Text: "new"}, nil)
		require.NoError(t, err)
		require.Equal(t, owner, updated.Author.ID)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)
		p := seed(t, svc)

		_, err := svc.EditPost(ctx, p.ID, stranger, post.PostForm{Text: "hijack"}, nil)
		require.ErrorIs(t, err, post.ErrNotOwner)

		// Nothing changed.
		stored, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "original", stored.Text)
	})

	t.Run("missing post", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.EditPost(ctx, 9999, owner, post.PostForm{Text: "x"}, nil)
		require.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

func TestFeeds(t *testing.T) {
	ctx := context.Background()

	t.Run("group feed resolves group and pages", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		authorID := uuid.New()

		for i := 0; i < 3; i++ {
			_, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "in group", Group: "cats"}, nil)
			require.NoError(t, err)
		}
		_, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "no group"}, nil)
		require.NoError(t, err)

		g, page, err := svc.GroupFeed(ctx, "cats", 1)
		require.NoError(t, err)
		require.Equal(t, "Cats", g.Title)
		require.Equal(t, 3, page.TotalItems)
		require.Len(t, page.Items, 3)
	})

	t.Run("group feed unknown slug", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, _, err := svc.GroupFeed(ctx, "nope", 1)
		require.ErrorIs(t, err, group.ErrGroupNotFound)
	})

	t.Run("author feed resolves user", func(t *testing.T) {
		svc, _, _, users := newTestService(t)
		authorID := uuid.New()
		users.users["alice"] = &user.User{ID: authorID, Username: "alice"}

		_, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "mine"}, nil)
		require.NoError(t, err)

		u, page, err := svc.AuthorFeed(ctx, "alice", 1)
		require.NoError(t, err)
		require.Equal(t, "alice", u.Username)
		require.Equal(t, 1, page.TotalItems)
	})

	t.Run("author feed unknown user", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, _, err := svc.AuthorFeed(ctx, "ghost", 1)
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		authorID := uuid.New()

		_, err := svc.CreatePost(ctx, authorID, post.PostForm{Text: "only one"}, nil)
		require.NoError(t, err)

		page, err := svc.IndexFeed(ctx, 5)
		require.NoError(t, err)
		require.Empty(t, page.Items)
		require.False(t, page.HasNext)
		require.True(t, page.HasPrev)
	})
}
