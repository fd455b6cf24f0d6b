package db

import (
	"strconv" // Price bound parsing
	"strings" // Range splitting

	"go.mongodb.org/mongo-driver/bson" // BSON documents
)

// MealQuery holds the validated, optional meal search inputs.
// Absent inputs contribute no filter clause
type MealQuery struct {
	Search   string   // Title substring, case-insensitive
	Category string   // Category substring, case-insensitive
	MinPrice *float64 // Inclusive lower price bound
	MaxPrice *float64 // Inclusive upper price bound
}

// ParseMealQuery builds a MealQuery from raw query parameters.
// The price range has the form "min-max"; a range whose lower bound is
// missing or unparsable contributes no price filter at all
func ParseMealQuery(search, category, priceRange string) MealQuery {
	q := MealQuery{Search: search, Category: category}
	if priceRange == "" {
		return q
	}
	parts := strings.SplitN(priceRange, "-", 2)
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return q // No lower bound, no price filter
	}
	q.MinPrice = &min
	if len(parts) == 2 {
		if max, err := strconv.ParseFloat(parts[1], 64); err == nil {
			q.MaxPrice = &max
		}
	}
	return q
}

// Filter produces the document-store filter for the query.
// All present clauses compose conjunctively
func (q MealQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Search != "" {
		filter["meal_title"] = bson.M{"$regex": q.Search, "$options": "i"}
	}
	if q.Category != "" {
		filter["category"] = bson.M{"$regex": q.Category, "$options": "i"}
	}
	if q.MinPrice != nil {
		price := bson.M{"$gte": *q.MinPrice}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}
