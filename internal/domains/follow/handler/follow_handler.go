package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-backend/internal/domains/follow"
	"inkwell-backend/internal/domains/follow/service"
	"inkwell-backend/internal/shared/middleware"
	"inkwell-backend/internal/shared/response"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow subscribes the current user to an author.
// POST /profile/:username/follow/
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.followService.Follow(c.Request.Context(), userID, c.Param("username")); err != nil {
		statusCode, errCode := mapFollowError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"following": true})
}

// Unfollow removes the subscription. Safe to call when not following.
// POST /profile/:username/unfollow/
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.followService.Unfollow(c.Request.Context(), userID, c.Param("username")); err != nil {
		statusCode, errCode := mapFollowError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": false})
}

func mapFollowError(err error) (int, string) {
	switch {
	case errors.Is(err, follow.ErrAuthorNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, follow.ErrSelfFollow):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, follow.ErrAlreadyFollowing):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}
