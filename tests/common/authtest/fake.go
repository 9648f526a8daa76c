//go:build unit || e2e

package authtest

import (
	"net/http"

	"ticket-marketplace/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FakeAuth stands in for the auth middleware in handler tests: any bearer token
// authenticates as the given user, and a missing header is rejected.
func FakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}
