package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-backend/internal/shared/middleware"
	"inkwell-backend/internal/shared/response"
	"inkwell-backend/pkg/container"
)

// SetupRouter registers middlewares and routes. Paths mirror the site's
// URL scheme, trailing slashes included.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.Identify(c.JWTManager))

	// Index feed is the hottest page; serve it from the response cache.
	router.GET("/",
		middleware.CachePage(c.Cache, middleware.IndexCacheKey, c.Config.Cache.IndexTTL),
		c.PostHandler.Index,
	)

	router.GET("/group/:slug/", c.PostHandler.GroupFeed)
	router.GET("/profile/:username/", c.PostHandler.Profile)
	router.GET("/posts/:id/", c.PostHandler.Detail)

	auth := router.Group("/auth")
	{
		auth.POST("/register/", c.UserHandler.Register)
		auth.GET("/login/", c.UserHandler.LoginForm)
		auth.POST("/login/", c.UserHandler.Login)
		auth.POST("/logout/", c.UserHandler.Logout)
	}

	// Everything below mutates content or is per-user; anonymous requests
	// are redirected to the login page.
	protected := router.Group("/")
	protected.Use(middleware.RequireUser())
	{
		protected.GET("/follow/", c.PostHandler.FollowIndex)
		protected.GET("/create/", c.PostHandler.CreateForm)
		protected.POST("/create/", c.PostHandler.Create)
		protected.GET("/posts/:id/edit/", c.PostHandler.EditForm)
		protected.POST("/posts/:id/edit/", c.PostHandler.Edit)
		protected.POST("/posts/:id/comment/", c.CommentHandler.AddComment)
		protected.POST("/profile/:username/follow/", c.FollowHandler.Follow)
		protected.POST("/profile/:username/unfollow/", c.FollowHandler.Unfollow)
	}

	internal := router.Group("/internal")
	internal.Use(middleware.RequireUser())
	{
		internal.POST("/groups/", c.GroupHandler.Create)
		internal.PATCH("/groups/:slug/", c.GroupHandler.UpdateDescription)

		// Editors can push fresh content to the index page before the
		// cache window expires.
		internal.POST("/cache/clear", func(ctx *gin.Context) {
			if err := c.Cache.Delete(ctx.Request.Context(), middleware.IndexCacheKey); err != nil {
				response.InternalServerError(ctx, err.Error())
				return
			}
			response.Success(ctx, http.StatusOK, gin.H{"cleared": middleware.IndexCacheKey})
		})
	}

	router.GET("/health", func(ctx *gin.Context) {
		status := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}

		ctx.JSON(http.StatusOK, status)
	})

	return router
}
