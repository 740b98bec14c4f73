package middleware

import (
	"net/http"
	"strings"

	"tasmeem_backend/internal/auth"
	"tasmeem_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the token for browser clients that do not set
// the Authorization header.
const SessionCookieName = "session"

const (
	ContextUserIDKey   = "userID"
	ContextRoleKey     = "role"
	ContextUserTypeKey = "userType"
)

// AuthMiddleware requires a valid token in the Authorization header or in
// the session cookie and stores the claims on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Set(ContextUserTypeKey, claims.UserType)
		c.Next()
	}
}

// OptionalAuthMiddleware populates claims when a valid token is present and
// lets the request through either way. Used by endpoints that answer both
// signed-in and anonymous callers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromRequest(c); err == nil {
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextRoleKey, claims.Role)
			c.Set(ContextUserTypeKey, claims.UserType)
		}
		c.Next()
	}
}

// RequireRoles restricts a route to the listed roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

func claimsFromRequest(c *gin.Context) (*auth.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return nil, auth.ErrInvalidToken
	}
	return auth.ParseToken(cookie)
}
