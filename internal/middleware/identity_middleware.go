package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/model"
)

// UserIDHeader carries the acting user for a request. The desktop shell is
// the only caller, so this is identification, not authentication.
const UserIDHeader = "X-User-ID"

// IdentityMiddleware resolves the acting user. Requests without the header
// act as the seeded local user.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = model.LocalUserID
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// GetUserID retrieves the acting user ID from gin context
func GetUserID(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return model.LocalUserID
}
