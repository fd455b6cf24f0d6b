package api

import (
	"net/http" // HTTP status codes

	"github.com/borhan98/UniFood-Server/internal/db"     // Document store access
	"github.com/borhan98/UniFood-Server/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"         // Gin web framework
	"go.mongodb.org/mongo-driver/bson" // BSON filters
)

// ListUsersHandler returns every registered user (admin only)
func ListUsersHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := store.Users().Find(c.Request.Context(), bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"}) // Return on error
			return
		}
		c.JSON(http.StatusOK, users) // Return the user list
	}
}

// GetUserHandler returns a single user by email
func GetUserHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email path parameter
		var user bson.M           // Returned verbatim, whatever fields are stored
		err := store.Users().FindOne(c.Request.Context(), bson.M{"email": email}, &user)
		if err == db.ErrNoDocument {
			c.JSON(http.StatusOK, nil) // Mirror the store's null result for a miss
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// RegisterUserHandler registers a user unless the email is already present.
// The existence check and the insert are two separate store calls, so two
// concurrent registrations for one email can race past the check; the seed
// tool's unique index on email is what actually rejects the loser
func RegisterUserHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var newUser domain.User // Bind JSON request to struct
		if err := c.ShouldBindJSON(&newUser); err != nil || newUser.Email == "" {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if newUser.Role == "" {
			newUser.Role = domain.RoleUser // Everyone starts as a regular user
		}
		var existing domain.User
		err := store.Users().FindOne(c.Request.Context(), bson.M{"email": newUser.Email}, &existing)
		if err == nil {
			// Duplicate registration is a no-op, not an error
			c.JSON(http.StatusOK, gin.H{"message": "User already existing", "insertedId": nil})
			return
		}
		if err != db.ErrNoDocument {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check user"})
			return
		}
		result, err := store.Users().InsertOne(c.Request.Context(), newUser)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		c.JSON(http.StatusOK, result) // Insert acknowledgement with the new id
	}
}

// BadgeRequest names the purchased package
type BadgeRequest struct {
	PackageName string `json:"package_name" binding:"required"` // Package name must be provided
}

// UpdateBadgeHandler sets the user's badge from a purchased package name,
// unless the same badge is already held
func UpdateBadgeHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email path parameter
		var req BadgeRequest      // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Read the current badge first
		err := store.Users().FindOne(c.Request.Context(), bson.M{"email": email}, &user)
		if err != nil && err != db.ErrNoDocument {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		// Re-purchasing the held badge is a no-op, not an error
		if user.Badge == req.PackageName {
			c.JSON(http.StatusOK, gin.H{"message": "already purchase", "modifiedCount": nil})
			return
		}
		result, err := store.Users().UpdateOne(c.Request.Context(),
			bson.M{"email": email},
			bson.M{"$set": bson.M{"badge": req.PackageName}}, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update badge"})
			return
		}
		c.JSON(http.StatusOK, result) // Update acknowledgement
	}
}

// AdminStatusHandler reports whether the given email holds the admin role.
// SelfOnlyMiddleware has already ensured the caller asks about itself
func AdminStatusHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email path parameter
		var user domain.User
		err := store.Users().FindOne(c.Request.Context(), bson.M{"email": email}, &user)
		if err != nil && err != db.ErrNoDocument {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		// An unknown user is simply not an admin
		c.JSON(http.StatusOK, gin.H{"admin": user.Role == domain.RoleAdmin})
	}
}

// PromoteAdminHandler grants the admin role to the target email.
// Roles only ever move user to admin on this surface, never back
func PromoteAdminHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email path parameter
		result, err := store.Users().UpdateOne(c.Request.Context(),
			bson.M{"email": email},
			bson.M{"$set": bson.M{"role": domain.RoleAdmin}}, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
			return
		}
		c.JSON(http.StatusOK, result) // Update acknowledgement
	}
}
