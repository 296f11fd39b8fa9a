package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"inkwell-backend/internal/domains/group"
	"inkwell-backend/internal/domains/group/service"
	"inkwell-backend/internal/shared/response"
)

type GroupHandler struct {
	groupService service.GroupService
}

func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create registers a new group.
// POST /internal/groups/
func (h *GroupHandler) Create(c *gin.Context) {
	var req group.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	g, err := h.groupService.Create(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapGroupError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, g)
}

// UpdateDescription edits the group description.
// PATCH /internal/groups/:slug/
func (h *GroupHandler) UpdateDescription(c *gin.Context) {
	var req group.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	g, err := h.groupService.UpdateDescription(c.Request.Context(), c.Param("slug"), req.Description)
	if err != nil {
		statusCode, errCode := mapGroupError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, g)
}

func mapGroupError(err error) (int, string) {
	switch {
	case errors.Is(err, group.ErrGroupNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, group.ErrSlugAlreadyExists):
		return http.StatusConflict, "CONFLICT"
	default:
		var verr validation.Errors
		if errors.As(err, &verr) {
			return http.StatusBadRequest, "VALIDATION_ERROR"
		}
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}
