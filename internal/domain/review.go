package domain

import (
	"encoding/json" // JSON decoding for Rating
	"fmt"           // Error formatting
	"strconv"       // String to int conversion

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is an integer review score that also accepts a quoted number
// in JSON bodies (clients submit both 4 and "4")
type Rating int

// UnmarshalJSON decodes a rating from a JSON number or numeric string
func (r *Rating) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*r = Rating(v) // Plain JSON number
		return nil
	case string:
		n, err := strconv.Atoi(v) // Quoted number
		if err != nil {
			return err
		}
		*r = Rating(n)
		return nil
	default:
		return fmt.Errorf("invalid rating value: %s", data)
	}
}

// Review Model
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`               // Store-assigned id
	UserName  string             `bson:"user_name" json:"user_name"`                       // Author display name
	UserImage string             `bson:"user_image,omitempty" json:"user_image,omitempty"` // Author image URL
	Email     string             `bson:"email" json:"email"`                               // Author email
	MealID    string             `bson:"meal_id" json:"meal_id"`                           // Reviewed meal id (hex string reference)
	MealTitle string             `bson:"meal_title" json:"meal_title"`                     // Reviewed meal title
	Opinion   string             `bson:"opinion" json:"opinion"`                           // Opinion text
	Rating    Rating             `bson:"rating" json:"rating"`                             // Integer rating
}
