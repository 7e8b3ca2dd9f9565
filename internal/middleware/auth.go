package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/auth"
)

const authUserKey = "auth_user_name"

// RequireAuth validates the Bearer session token and stores the user
// name in the request context. Requests without a valid token are
// rejected before any processing.
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(jwtService, c)
		if err != nil {
			status := "Invalid token"
			if err == auth.ErrExpiredToken {
				status = "Token has expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": status})
			c.Abort()
			return
		}

		c.Set(authUserKey, claims.UserName)
		c.Next()
	}
}

// OptionalAuth stores the user name when a valid token is present but
// never rejects the request. Used where anonymous access degrades to
// the curated catalog only.
func OptionalAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromHeader(jwtService, c); err == nil {
			c.Set(authUserKey, claims.UserName)
		}
		c.Next()
	}
}

func claimsFromHeader(jwtService *auth.JWTService, c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, auth.ErrInvalidToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}
	return jwtService.ValidateToken(parts[1])
}

// UserName returns the authenticated user name set by RequireAuth or
// OptionalAuth, if any.
func UserName(c *gin.Context) (string, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok && name != ""
}
