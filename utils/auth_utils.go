package utils

import (
	"github.com/gin-gonic/gin"
)

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the verified claims placed in the context by the auth
// middleware, or nil when the request is unauthenticated.
func GetUser(c *gin.Context) *Claims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if claims, ok := user.(*Claims); ok {
		return claims
	}
	return nil
}
