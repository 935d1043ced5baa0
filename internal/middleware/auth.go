package middleware

import (
	"net/http"
	"strings"

	"scamwise-backend/internal/models"
	"scamwise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "userId"
	ContextUserRole = "userRole"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the gin context.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if after, ok := strings.CutPrefix(tokenString, "Bearer "); ok {
			tokenString = after
		}
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id from the context.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// CallerIsAdmin reports whether the authenticated caller has the admin role.
func CallerIsAdmin(c *gin.Context) bool {
	return c.GetString(ContextUserRole) == models.RoleAdmin
}
