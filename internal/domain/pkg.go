package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Package Model (subscription package / badge tier)
type Package struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`     // Store-assigned id
	Name  string             `bson:"package_name" json:"package_name"`       // Package name, becomes the user's badge
	Price float64            `bson:"price" json:"price"`                     // Monthly price
	Perks []string           `bson:"perks,omitempty" json:"perks,omitempty"` // Perk descriptions
}
