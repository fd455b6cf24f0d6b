package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// MealRequest Model (a user's order/request for a meal)
type MealRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`             // Store-assigned id, canonical delete key
	UserEmail string             `bson:"user_email" json:"user_email"`                   // Requester email
	UserName  string             `bson:"user_name,omitempty" json:"user_name,omitempty"` // Requester display name
	MealID    string             `bson:"meal_id" json:"meal_id"`                         // Requested meal id (hex string reference)
	MealTitle string             `bson:"meal_title" json:"meal_title"`                   // Requested meal title
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`       // Delivery status, e.g. pending
}
