package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"inkwell-backend/internal/domains/user"
	"inkwell-backend/internal/domains/user/service"
	"inkwell-backend/internal/shared/middleware"
	"inkwell-backend/internal/shared/response"
)

type UserHandler struct {
	userService  service.UserService
	cookieMaxAge int
}

func NewUserHandler(userService service.UserService, cookieMaxAge int) *UserHandler {
	return &UserHandler{
		userService:  userService,
		cookieMaxAge: cookieMaxAge,
	}
}

// Register creates an account.
// POST /auth/register/
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapUserError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	h.setAuthCookie(c, resp.AccessToken)
	response.Success(c, http.StatusCreated, resp)
}

// LoginForm returns the login form bundle; the next parameter is echoed
// back so the client can resume the interrupted request after login.
// GET /auth/login/
func (h *UserHandler) LoginForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"form": gin.H{
			"fields": []string{"username", "password"},
		},
		"next": safeNext(c.Query("next")),
	})
}

// Login authenticates and opens a session.
// POST /auth/login/
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapUserError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	h.setAuthCookie(c, resp.AccessToken)

	// Browser flow: send the user back to where they were headed.
	if next := safeNext(c.Query("next")); next != "" {
		c.Redirect(http.StatusFound, next)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout clears the session cookie.
// POST /auth/logout/
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (h *UserHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.AuthCookie, token, h.cookieMaxAge, "/", "", false, true)
}

// safeNext keeps redirects on-site: only relative paths survive.
func safeNext(raw string) string {
	if raw == "" {
		return ""
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	if !strings.HasPrefix(decoded, "/") || strings.HasPrefix(decoded, "//") {
		return ""
	}
	return decoded
}

func mapUserError(err error) (int, string) {
	switch {
	case errors.Is(err, user.ErrUsernameAlreadyExists),
		errors.Is(err, user.ErrEmailAlreadyExists):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, user.ErrPasswordMismatch):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	default:
		var verr validation.Errors
		if errors.As(err, &verr) {
			return http.StatusBadRequest, "VALIDATION_ERROR"
		}
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}
