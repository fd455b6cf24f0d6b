package api

import (
	"net/http" // HTTP status codes

	"github.com/borhan98/UniFood-Server/internal/db"     // Document store access
	"github.com/borhan98/UniFood-Server/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"                   // Gin web framework
	"go.mongodb.org/mongo-driver/bson"           // BSON filters
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID parsing
)

// ListRequestsHandler returns meal requests, filtered by requester email
// when given. An absent email parameter means no filter
func ListRequestsHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		if email := c.Query("email"); email != "" {
			filter["user_email"] = email // Filter by requester email
		}
		requests, err := store.Requests().Find(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"}) // Return on error
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// CreateRequestHandler inserts a new meal request
func CreateRequestHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.MealRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.UserEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Status == "" {
			req.Status = "pending" // Requests start out pending
		}
		result, err := store.Requests().InsertOne(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
			return
		}
		c.JSON(http.StatusOK, result) // Insert acknowledgement with the new id
	}
}

// DeleteRequestHandler deletes a meal request by its primary id.
// The id is the request's own id, never the embedded meal id; a meal id is
// not unique across requests and cannot safely select one
func DeleteRequestHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id")) // Parse the id path parameter
		if err != nil {
			// A malformed id is a backend failure, not a user-facing case
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid request id"})
			return
		}
		result, err := store.Requests().DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
			return
		}
		c.JSON(http.StatusOK, result) // Delete acknowledgement
	}
}
