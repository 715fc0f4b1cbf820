package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated identity in the request context.
const (
	userIDKey  = contextKey("userID")
	ownerIDKey = contextKey("ownerID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetOwnerIDFromContext retrieves the owner whose records the request may touch.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, ownerIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if val, exists := c.Get(string(key)); exists {
		s, ok := val.(string)
		return s, ok && s != ""
	}
	if c.Request == nil {
		return "", false
	}
	s, ok := c.Request.Context().Value(key).(string)
	return s, ok && s != ""
}
