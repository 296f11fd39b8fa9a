// Package container wires the application dependency graph: config,
// infrastructure, repositories, services, handlers, in that order.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"inkwell-backend/internal/config"
	infracache "inkwell-backend/internal/infrastructure/cache"
	"inkwell-backend/internal/infrastructure/database"
	"inkwell-backend/internal/infrastructure/storage"
	"inkwell-backend/pkg/cache"
	"inkwell-backend/pkg/jwt"

	commentHandler "inkwell-backend/internal/domains/comment/handler"
	commentRepo "inkwell-backend/internal/domains/comment/repository"
	commentService "inkwell-backend/internal/domains/comment/service"
	followHandler "inkwell-backend/internal/domains/follow/handler"
	followRepo "inkwell-backend/internal/domains/follow/repository"
	followService "inkwell-backend/internal/domains/follow/service"
	groupHandler "inkwell-backend/internal/domains/group/handler"
	groupRepo "inkwell-backend/internal/domains/group/repository"
	groupService "inkwell-backend/internal/domains/group/service"
	postHandler "inkwell-backend/internal/domains/post/handler"
	postRepo "inkwell-backend/internal/domains/post/repository"
	postService "inkwell-backend/internal/domains/post/service"
	userHandler "inkwell-backend/internal/domains/user/handler"
	userRepo "inkwell-backend/internal/domains/user/repository"
	userService "inkwell-backend/internal/domains/user/service"
)

// Container holds every long-lived dependency of the application.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    storage.Storage
	JWTManager *jwt.Manager

	UserRepo    userRepo.UserRepository
	GroupRepo   groupRepo.GroupRepository
	PostRepo    postRepo.PostRepository
	CommentRepo commentRepo.CommentRepository
	FollowRepo  followRepo.FollowRepository

	UserService    userService.UserService
	GroupService   groupService.GroupService
	PostService    postService.PostService
	CommentService commentService.CommentService
	FollowService  followService.FollowService

	UserHandler    *userHandler.UserHandler
	GroupHandler   *groupHandler.GroupHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
	FollowHandler  *followHandler.FollowHandler
}

// NewContainer builds the full dependency graph. Order matters: config,
// then infrastructure, then repositories, services and handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	// Migrations run over database/sql before the pgx pool opens, so the
	// schema is in place when the first query hits.
	if err := database.Migrate(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infracache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}
	c.Cache = redisCache

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = store

	tokenExpiry := time.Duration(cfg.JWT.TokenExpiry) * time.Hour
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, tokenExpiry)

	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)
	c.GroupRepo = groupRepo.NewPostgresGroupRepository(db.Pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(db.Pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(db.Pool)
	c.FollowRepo = followRepo.NewPostgresFollowRepository(db.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, tokenExpiry)
	c.GroupService = groupService.NewGroupService(c.GroupRepo)
	c.PostService = postService.NewPostService(
		c.PostRepo,
		c.GroupRepo,
		c.UserRepo,
		c.Storage,
		storage.NewImageProcessor(),
		cfg.Feed.PageSize,
	)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.FollowService = followService.NewFollowService(c.FollowRepo, c.UserRepo)

	cookieMaxAge := int(tokenExpiry / time.Second)
	c.UserHandler = userHandler.NewUserHandler(c.UserService, cookieMaxAge)
	c.GroupHandler = groupHandler.NewGroupHandler(c.GroupService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.CommentService, c.FollowService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.FollowHandler = followHandler.NewFollowHandler(c.FollowService)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("container cleaned up")
}
