package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"inkwell-backend/internal/domains/comment"
	commentsvc "inkwell-backend/internal/domains/comment/service"
	followsvc "inkwell-backend/internal/domains/follow/service"
	"inkwell-backend/internal/domains/group"
	"inkwell-backend/internal/domains/post"
	"inkwell-backend/internal/domains/post/service"
	"inkwell-backend/internal/domains/user"
	"inkwell-backend/internal/shared/feed"
	"inkwell-backend/internal/shared/middleware"
	"inkwell-backend/internal/shared/response"
)

type PostHandler struct {
	postService    service.PostService
	commentService commentsvc.CommentService
	followService  followsvc.FollowService
}

func NewPostHandler(
	postService service.PostService,
	commentService commentsvc.CommentService,
	followService followsvc.FollowService,
) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		followService:  followService,
	}
}

// Index returns the newest-first feed across all groups.
// GET /
func (h *PostHandler) Index(c *gin.Context) {
	page, err := h.postService.IndexFeed(c.Request.Context(), feed.PageParam(c))
	if err != nil {
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"posts": page.Items}, pageMeta(page))
}

// GroupFeed returns one group's posts, newest first.
// GET /group/:slug/
func (h *PostHandler) GroupFeed(c *gin.Context) {
	grp, page, err := h.postService.GroupFeed(c.Request.Context(), c.Param("slug"), feed.PageParam(c))
	if err != nil {
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"group": grp,
		"posts": page.Items,
	}, pageMeta(page))
}

// Profile returns an author's page: identity, post count, their posts and
// whether the current viewer follows them.
// GET /profile/:username/
func (h *PostHandler) Profile(c *gin.Context) {
	author, page, err := h.postService.AuthorFeed(c.Request.Context(), c.Param("username"), feed.PageParam(c))
	if err != nil {
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	following := false
	if viewerID, ok := middleware.CurrentUser(c); ok {
		following, err = h.followService.IsFollowing(c.Request.Context(), viewerID, author.ID)
		if err != nil {
			response.InternalServerError(c, err.Error())
			return
		}
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"author":     author.ToDTO(),
		"post_count": page.TotalItems,
		"following":  following,
		"posts":      page.Items,
	}, pageMeta(page))
}

// FollowIndex returns posts by the authors the current user follows.
// GET /follow/
func (h *PostHandler) FollowIndex(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	page, err := h.postService.FollowFeed(c.Request.Context(), userID, feed.PageParam(c))
	if err != nil {
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"posts": page.Items}, pageMeta(page))
}

// Detail returns one post with its comments and the comment form.
// GET /posts/:id/
func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	p, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	authorPosts, err := h.postService.CountByAuthor(c.Request.Context(), p.Author.ID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"post":              p,
		"author_post_count": authorPosts,
		"comments":          comments,
		"comment_form":      post.CommentFormSchema(),
	})
}

// CreateForm returns the post creation form bundle.
// GET /create/
func (h *PostHandler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"form": post.PostFormSchema()})
}

// Create publishes a new post authored by the current user.
// POST /create/
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var form post.PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.postService.CreatePost(c.Request.Context(), userID, form, image)
	if err != nil {
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// EditForm returns the edit form pre-filled with the post. Non-owners are
// sent back to the post page instead.
// GET /posts/:id/edit/
func (h *PostHandler) EditForm(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	p, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	userID, ok := middleware.CurrentUser(c)
	if !ok || !p.CanEdit(userID) {
		redirectToPost(c, postID)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"form": post.PostFormSchema(),
		"post": p,
	})
}

// Edit updates a post's text, group and image. Only the author may edit;
// anyone else is redirected to the post page.
// POST /posts/:id/edit/
func (h *PostHandler) Edit(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	userID, ok := middleware.CurrentUser(c)
	if !ok {
		redirectToPost(c, postID)
		return
	}

	var form post.PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.postService.EditPost(c.Request.Context(), postID, userID, form, image)
	if err != nil {
		if errors.Is(err, post.ErrNotOwner) {
			redirectToPost(c, postID)
			return
		}
		statusCode, errCode := mapPostError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func postIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func redirectToPost(c *gin.Context, postID int64) {
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
	c.Abort()
}

// readImage pulls the optional multipart image into memory. A missing file
// part is not an error.
func readImage(c *gin.Context) (*post.ImageUpload, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &post.ImageUpload{
		Data:        data,
		ContentType: file.Header.Get("Content-Type"),
	}, nil
}

func pageMeta[T any](p feed.Page[T]) *response.Meta {
	return &response.Meta{
		Page:       p.PageNumber,
		PageSize:   p.PageSize,
		Total:      p.TotalItems,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

func mapPostError(err error) (int, string) {
	switch {
	case errors.Is(err, post.ErrPostNotFound),
		errors.Is(err, group.ErrGroupNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, comment.ErrPostNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, post.ErrEmptyText):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	default:
		var verr validation.Errors
		if errors.As(err, &verr) {
			return http.StatusBadRequest, "VALIDATION_ERROR"
		}
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}
