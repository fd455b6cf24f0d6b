package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Meal Model
// Also used for the upcoming-meals collection, which shares the same shape
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`                           // Store-assigned id
	Title       string             `bson:"meal_title" json:"meal_title"`                                 // Meal title
	Category    string             `bson:"category" json:"category"`                                     // Category: breakfast, lunch, dinner
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`                       // Image URL
	Ingredients []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`           // Ingredient list
	Description string             `bson:"description,omitempty" json:"description,omitempty"`           // Description text
	Price       float64            `bson:"price" json:"price"`                                           // Price
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`                     // Average rating
	PostTime    string             `bson:"post_time,omitempty" json:"post_time,omitempty"`               // Posting time
	Distributor string             `bson:"distributor_name,omitempty" json:"distributor_name,omitempty"` // Posting admin
	Likes       int                `bson:"likes" json:"likes"`                                           // Like counter
	Reviews     int                `bson:"reviews" json:"reviews"`                                       // Review counter
}
