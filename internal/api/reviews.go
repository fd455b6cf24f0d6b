package api

import (
	"net/http" // HTTP status codes

	"github.com/borhan98/UniFood-Server/internal/db"     // Document store access
	"github.com/borhan98/UniFood-Server/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"                   // Gin web framework
	"go.mongodb.org/mongo-driver/bson"           // BSON filters
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID parsing
)

// ListReviewsHandler returns reviews, filtered by author email when given.
// An absent email parameter means no filter, never an empty-string filter
func ListReviewsHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		if email := c.Query("email"); email != "" {
			filter["email"] = email // Filter by author email
		}
		reviews, err := store.Reviews().Find(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"}) // Return on error
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// ListMealReviewsHandler returns all reviews referencing a meal id
func ListMealReviewsHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		mealID := c.Param("id") // Meal id path parameter, stored as a hex string reference
		reviews, err := store.Reviews().Find(c.Request.Context(), bson.M{"meal_id": mealID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GetReviewHandler returns a single review by its own id
func GetReviewHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id")) // Parse the id path parameter
		if err != nil {
			// A malformed id is a backend failure, not a user-facing case
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid review id"})
			return
		}
		var review bson.M // Returned verbatim, whatever fields are stored
		err = store.Reviews().FindOne(c.Request.Context(), bson.M{"_id": id}, &review)
		if err == db.ErrNoDocument {
			c.JSON(http.StatusOK, nil) // Mirror the store's null result for a miss
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// UpsertReviewHandler creates or replaces a review under the given id.
// Every field is written through $set; the rating is coerced to an integer
// even when submitted as a string
func UpsertReviewHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id")) // Parse the id path parameter
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid review id"})
			return
		}
		var review domain.Review // Bind JSON request to struct
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		update := bson.M{"$set": bson.M{
			"user_name":  review.UserName,    // Author display name
			"user_image": review.UserImage,   // Author image URL
			"email":      review.Email,       // Author email
			"meal_id":    review.MealID,      // Reviewed meal reference
			"meal_title": review.MealTitle,   // Reviewed meal title
			"opinion":    review.Opinion,     // Opinion text
			"rating":     int(review.Rating), // Integer rating
		}}
		result, err := store.Reviews().UpdateOne(c.Request.Context(), bson.M{"_id": id}, update, true)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusOK, result) // Update acknowledgement, upsert id when created
	}
}

// CreateReviewHandler inserts a new review
func CreateReviewHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review domain.Review // Bind JSON request to struct
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := store.Reviews().InsertOne(c.Request.Context(), review)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusOK, result) // Insert acknowledgement with the new id
	}
}

// DeleteReviewHandler deletes a review by its own id
func DeleteReviewHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id")) // Parse the id path parameter
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid review id"})
			return
		}
		result, err := store.Reviews().DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.JSON(http.StatusOK, result) // Delete acknowledgement
	}
}
