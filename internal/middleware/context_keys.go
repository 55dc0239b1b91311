package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated identity in the request context.
const (
	userIDKey   = contextKey("userID")
	usernameKey = contextKey("username")
	userRolKey  = contextKey("userRol")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userIDKey)
	if val == nil {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated username from the Gin context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(usernameKey)
	if val == nil {
		return "", false
	}
	username, ok := val.(string)
	return username, ok
}

// GetUserRolFromContext retrieves the authenticated user's role from the Gin context.
func GetUserRolFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userRolKey)
	if val == nil {
		return "", false
	}
	rol, ok := val.(string)
	return rol, ok
}
