package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"inkwell-backend/internal/domains/comment"
	"inkwell-backend/internal/domains/comment/service"
	"inkwell-backend/internal/shared/middleware"
	"inkwell-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment attaches a comment to a post as the current user.
// POST /posts/:id/comment/
func (h *CommentHandler) AddComment(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var form comment.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.commentService.CreateComment(c.Request.Context(), postID, userID, form)
	if err != nil {
		statusCode, errCode := mapCommentError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

func mapCommentError(err error) (int, string) {
	switch {
	case errors.Is(err, comment.ErrPostNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, comment.ErrEmptyText):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	default:
		var verr validation.Errors
		if errors.As(err, &verr) {
			return http.StatusBadRequest, "VALIDATION_ERROR"
		}
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}
