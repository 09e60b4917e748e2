package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// UserRoleHeader carries the caller's role. Role is the sole authorization
// gate; there is no credential check behind it.
const UserRoleHeader = "X-User-Role"

// RequireAdmin rejects requests whose role header is not ADMIN.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.UserRole(c.GetHeader(UserRoleHeader))
		if role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}
