package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inkwell-backend/pkg/jwt"
)

const (
	// LoginPath is where anonymous users are sent for protected actions.
	LoginPath = "/auth/login/"

	// AuthCookie carries the session token for browser clients.
	AuthCookie = "auth_token"

	ctxUserID   = "userID"
	ctxUsername = "username"
)

// Identify resolves the current user from a Bearer token or the auth cookie
// and stores identity in the gin context. Anonymous requests pass through.
func Identify(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(AuthCookie); err == nil {
				token = cookie
			}
		}

		if token != "" {
			if claims, err := manager.Validate(token); err == nil {
				if userID, err := uuid.Parse(claims.UserID); err == nil {
					c.Set(ctxUserID, userID)
					c.Set(ctxUsername, claims.Username)
				}
			}
		}

		c.Next()
	}
}

// RequireUser gates mutating actions. Anonymous requests are redirected to
// the login page with the originally requested path in the next parameter,
// so the identity flow can send the user back afterwards.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ctxUserID); !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user's id, if any.
func CurrentUser(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// CurrentUsername returns the authenticated user's username, if any.
func CurrentUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUsername)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
