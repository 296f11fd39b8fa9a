package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"inkwell-backend/internal/domains/comment"
)

type fakeCommentRepo struct {
	knownPosts map[int64]bool
	comments   []comment.Comment
	nextID     int64
}

func newFakeCommentRepo(postIDs ...int64) *fakeCommentRepo {
	known := map[int64]bool{}
	for _, id := range postIDs {
		known[id] = true
	}
	return &fakeCommentRepo{knownPosts: known, nextID: 1}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *comment.Comment) error {
	if !r.knownPosts[c.PostID] {
		return comment.ErrPostNotFound
	}
	c.ID = r.nextID
	c.Created = time.Now()
	r.nextID++
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]comment.Comment, error) {
	out := []comment.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("creates comment on existing post", func(t *testing.T) {
		svc := NewCommentService(newFakeCommentRepo(1))

		c, err := svc.CreateComment(ctx, 1, authorID, comment.CommentForm{Text: "nice"})
		require.NoError(t, err)
		require.Equal(t, int64(1), c.PostID)
		require.Equal(t, authorID, c.Author.ID)
		require.False(t, c.Created.IsZero())
	})

	t.Run("rejects empty text", func(t *testing.T) {
		repo := newFakeCommentRepo(1)
		svc := NewCommentService(repo)

		_, err := svc.CreateComment(ctx, 1, authorID, comment.CommentForm{Text: "  \n "})
		require.ErrorIs(t, err, comment.ErrEmptyText)
		require.Empty(t, repo.comments)
	})

	t.Run("rejects missing post", func(t *testing.T) {
		svc := NewCommentService(newFakeCommentRepo())

		_, err := svc.CreateComment(ctx, 42, authorID, comment.CommentForm{Text: "hello"})
		require.ErrorIs(t, err, comment.ErrPostNotFound)
	})
}

func TestListByPost(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(newFakeCommentRepo(1, 2))

	for _, text := range []string{"first", "second"} {
		_, err := svc.CreateComment(ctx, 1, uuid.New(), comment.CommentForm{Text: text})
		require.NoError(t, err)
	}

	comments, err := svc.ListByPost(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "first", comments[0].Text)

	empty, err := svc.ListByPost(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, empty)
}
