package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/borhan98/UniFood-Server/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context key where the authenticated caller's email is stored
const ContextEmailKey = "email"

// JWTAuthMiddleware validates JWT bearer tokens and extracts the caller's email
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil || claims.Email == "" {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		c.Set(ContextEmailKey, claims.Email) // Store caller email in context
		c.Next()                             // Proceed to the next handler
	}
}

// CallerEmail returns the authenticated email placed in the context by
// JWTAuthMiddleware, or false when authentication never ran
func CallerEmail(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextEmailKey)
	if !exists {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}
