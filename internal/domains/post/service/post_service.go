package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"inkwell-backend/internal/domains/group"
	groupRepo "inkwell-backend/internal/domains/group/repository"
	"inkwell-backend/internal/domains/post"
	"inkwell-backend/internal/domains/post/repository"
	"inkwell-backend/internal/domains/user"
	userRepo "inkwell-backend/internal/domains/user/repository"
	"inkwell-backend/internal/infrastructure/storage"
	"inkwell-backend/internal/shared/feed"
)

type postService struct {
	postRepo  repository.PostRepository
	groupRepo groupRepo.GroupRepository
	userRepo  userRepo.UserRepository
	storage   storage.Storage
	images    *storage.ImageProcessor
	pageSize  int
}

func NewPostService(
	postRepo repository.PostRepository,
	groups groupRepo.GroupRepository,
	users userRepo.UserRepository,
	store storage.Storage,
	images *storage.ImageProcessor,
	pageSize int,
) PostService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groups,
		userRepo:  users,
		storage:   store,
		images:    images,
		pageSize:  pageSize,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, form post.PostForm, image *post.ImageUpload) (*post.Post, error) {
	if strings.TrimSpace(form.Text) == "" {
		return nil, post.ErrEmptyText
	}

	groupRef, err := s.resolveGroup(ctx, form.Group)
	if err != nil {
		return nil, err
	}

	imageURL, imageKey, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	p := &post.Post{
		Text:   form.Text,
		Author: post.Author{ID: authorID},
		Group:  groupRef,
		Image:  imageURL,
	}

	if err := s.postRepo.Create(ctx, p); err != nil {
		// The image must not outlive a failed insert: the post and its
		// image reference are all-or-nothing.
		s.discardImage(ctx, imageKey)
		return nil, err
	}

	return s.postRepo.GetByID(ctx, p.ID)
}

func (s *postService) EditPost(ctx context.Context, postID int64, actorID uuid.UUID, form post.PostForm, image *post.ImageUpload) (*post.Post, error) {
	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !p.CanEdit(actorID) {
		return nil, post.ErrNotOwner
	}

	if strings.TrimSpace(form.Text) == "" {
		return nil, post.ErrEmptyText
	}

	groupRef, err := s.resolveGroup(ctx, form.Group)
	if err != nil {
		return nil, err
	}

	imageURL, imageKey, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	p.Text = form.Text
	p.Group = groupRef
	if imageURL != nil {
		p.Image = imageURL
	}

	if err := s.postRepo.Update(ctx, p); err != nil {
		s.discardImage(ctx, imageKey)
		return nil, err
	}

	return s.postRepo.GetByID(ctx, p.ID)
}

func (s *postService) GetPost(ctx context.Context, id int64) (*post.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *postService) IndexFeed(ctx context.Context, page int) (feed.Page[post.Post], error) {
	return s.listPage(ctx, post.Filter{}, page)
}

func (s *postService) GroupFeed(ctx context.Context, slug string, page int) (*group.Group, feed.Page[post.Post], error) {
	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, feed.Page[post.Post]{}, err
	}

	p, err := s.listPage(ctx, post.Filter{GroupID: &g.ID}, page)
	if err != nil {
		return nil, feed.Page[post.Post]{}, err
	}

	return g, p, nil
}

func (s *postService) AuthorFeed(ctx context.Context, username string, page int) (*user.User, feed.Page[post.Post], error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, feed.Page[post.Post]{}, err
	}

	p, err := s.listPage(ctx, post.Filter{AuthorID: &u.ID}, page)
	if err != nil {
		return nil, feed.Page[post.Post]{}, err
	}

	return u, p, nil
}

func (s *postService) FollowFeed(ctx context.Context, userID uuid.UUID, page int) (feed.Page[post.Post], error) {
	if page < 1 {
		page = 1
	}

	items, total, err := s.postRepo.ListFollowed(ctx, userID, s.pageSize, feed.Offset(page, s.pageSize))
	if err != nil {
		return feed.Page[post.Post]{}, err
	}

	return feed.NewPage(items, total, page, s.pageSize), nil
}

func (s *postService) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return s.postRepo.CountByAuthor(ctx, authorID)
}

func (s *postService) listPage(ctx context.Context, f post.Filter, page int) (feed.Page[post.Post], error) {
	if page < 1 {
		page = 1
	}

	items, total, err := s.postRepo.List(ctx, f, s.pageSize, feed.Offset(page, s.pageSize))
	if err != nil {
		return feed.Page[post.Post]{}, err
	}

	return feed.NewPage(items, total, page, s.pageSize), nil
}

// resolveGroup turns a form slug into a group reference; an empty slug
// means no group.
func (s *postService) resolveGroup(ctx context.Context, slug string) (*post.GroupRef, error) {
	if slug == "" {
		return nil, nil
	}

	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &post.GroupRef{ID: g.ID, Title: g.Title, Slug: g.Slug}, nil
}

// storeImage validates, normalizes and uploads the image under the posts/
// namespace. Returns the public URL and the object key for rollback.
func (s *postService) storeImage(ctx context.Context, image *post.ImageUpload) (*string, string, error) {
	if image == nil {
		return nil, "", nil
	}

	if err := s.images.ValidateImage(image.Data); err != nil {
		return nil, "", fmt.Errorf("invalid image: %w", err)
	}

	data, err := s.images.Normalize(image.Data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to process image: %w", err)
	}

	key := "posts/" + uuid.NewString() + ".jpg"
	url, err := s.storage.Upload(ctx, key, data, "image/jpeg")
	if err != nil {
		return nil, "", fmt.Errorf("failed to store image: %w", err)
	}

	return &url, key, nil
}

func (s *postService) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to discard orphaned image")
	}
}
