package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"goblog/internal/pkg/jwtutil"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUserNameKey = "user_name"
	ContextUserRoleKey = "user_role"
)

const SignInPath = "/user/signin"

// CurrentUser reads the auth cookie and, when it carries a valid token,
// attaches the identity to the request context. A missing or invalid
// cookie leaves the request anonymous; it never aborts.
func CurrentUser(secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			log.Printf("auth cookie rejected: %v", err)
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserNameKey, claims.Name)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the sign-in page. It is a
// pure gate; roles are not checked anywhere.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUserIDKey); !exists {
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, or ok=false for an
// anonymous request.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// UserName returns the authenticated user's display name, or "" when
// anonymous.
func UserName(c *gin.Context) string {
	return c.GetString(ContextUserNameKey)
}
