package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles
const (
	RoleUser  = "user"  // Regular user
	RoleAdmin = "admin" // Administrator
)

// User Model
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`     // Store-assigned id
	Name  string             `bson:"name" json:"name"`                       // Display name
	Email string             `bson:"email" json:"email"`                     // Unique email, identity key
	Image string             `bson:"image,omitempty" json:"image,omitempty"` // Profile image URL
	Role  string             `bson:"role" json:"role"`                       // Role: user or admin
	Badge string             `bson:"badge,omitempty" json:"badge,omitempty"` // Purchased package name
}
