package middleware

import (
	"net/http" // HTTP status codes

	"github.com/borhan98/UniFood-Server/internal/db"     // Document store access
	"github.com/borhan98/UniFood-Server/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"         // Gin web framework
	"go.mongodb.org/mongo-driver/bson" // BSON filters
)

// AdminOnlyMiddleware checks the caller's stored role on each request.
// It must run after JWTAuthMiddleware; a missing email in context means the
// chain was miswired and the request fails closed as unauthorized
func AdminOnlyMiddleware(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := CallerEmail(c) // Get caller email from context
		// Check if the email exists in context
		if !ok {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		var user domain.User // Fetch user from the document store
		if err := store.Users().FindOne(c.Request.Context(), bson.M{"email": email}, &user); err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		// Check if user role is admin
		if user.Role != domain.RoleAdmin {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}

// SelfOnlyMiddleware restricts a route carrying an :email path parameter to
// the caller that parameter names. It compares against the token's email
// only, no role lookup involved
func SelfOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := CallerEmail(c) // Get caller email from context
		if !ok {
			// Fail closed when authentication never ran
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		// The path parameter must name the caller
		if c.Param("email") != email {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		c.Next()
	}
}
