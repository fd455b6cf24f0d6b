package api

import (
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"github.com/borhan98/UniFood-Server/internal/db"     // Document store access
	"github.com/borhan98/UniFood-Server/internal/domain" // Importing domain models
	"github.com/borhan98/UniFood-Server/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"                   // Gin web framework
	"github.com/redis/go-redis/v9"               // Redis client
	"go.mongodb.org/mongo-driver/bson"           // BSON filters
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID parsing
)

// mealCacheTTL bounds how stale the public meal listing may get
const mealCacheTTL = 60 * time.Second

// ListMealsHandler returns meals filtered by optional title search, category
// and inclusive price range. The three filters compose conjunctively;
// an absent parameter contributes no filter. Responses are cached briefly
// since this is the hottest public read
func ListMealsHandler(store db.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// Create a cache key from the filter parameters
		cacheKey := utils.CacheKey("meals",
			"search="+c.Query("searchValue"),
			"category="+c.Query("category"),
			"price="+c.Query("priceRange"))
		var cached []bson.M
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		// Build the filter from validated inputs
		query := db.ParseMealQuery(c.Query("searchValue"), c.Query("category"), c.Query("priceRange"))
		meals, err := store.Meals().Find(ctx, query.Filter())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"}) // Return on error
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, meals, mealCacheTTL)
		c.JSON(http.StatusOK, meals)
	}
}

// GetMealHandler returns a single meal by id
func GetMealHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id")) // Parse the id path parameter
		if err != nil {
			// A malformed id is a backend failure, not a user-facing case
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid meal id"})
			return
		}
		var meal bson.M // Returned verbatim, whatever fields are stored
		err = store.Meals().FindOne(c.Request.Context(), bson.M{"_id": id}, &meal)
		if err == db.ErrNoDocument {
			c.JSON(http.StatusOK, nil) // Mirror the store's null result for a miss
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
			return
		}
		c.JSON(http.StatusOK, meal)
	}
}

// CreateMealHandler inserts a new meal (admin only)
func CreateMealHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var meal domain.Meal // Bind JSON request to struct
		if err := c.ShouldBindJSON(&meal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := store.Meals().InsertOne(c.Request.Context(), meal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
			return
		}
		c.JSON(http.StatusOK, result) // Insert acknowledgement with the new id
	}
}

// CounterRequest adjusts a meal's aggregate counters
type CounterRequest struct {
	Value *int  `json:"value"` // Review count delta, when present
	Like  *bool `json:"like"`  // Current liked state, when present
}

// UpdateMealCountersHandler increments the review counter or toggles the
// like counter. The like flag carries the caller's PRIOR state: false means
// the user is now liking (+1), true means un-liking (-1). The inversion is
// the toggle's contract, do not flip it
func UpdateMealCountersHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id")) // Parse the id path parameter
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid meal id"})
			return
		}
		var req CounterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var update bson.M
		if req.Value != nil && *req.Value != 0 {
			update = bson.M{"$inc": bson.M{"reviews": *req.Value}} // Review count delta
		}
		// A like flag overrides a review delta when both are sent
		if req.Like != nil {
			if !*req.Like {
				update = bson.M{"$inc": bson.M{"likes": 1}} // Was not liked, now liking
			} else {
				update = bson.M{"$inc": bson.M{"likes": -1}} // Was liked, now un-liking
			}
		}
		if update == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}
		result, err := store.Meals().UpdateOne(c.Request.Context(), bson.M{"_id": id}, update, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
			return
		}
		c.JSON(http.StatusOK, result) // Update acknowledgement
	}
}

// CreateUpcomingMealHandler inserts a meal scheduled for publication
// (admin only). Upcoming meals are write-only on this surface; there is
// no read or promote route yet
func CreateUpcomingMealHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var meal domain.Meal // Upcoming meals share the meal shape
		if err := c.ShouldBindJSON(&meal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := store.UpcomingMeals().InsertOne(c.Request.Context(), meal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upcoming meal"})
			return
		}
		c.JSON(http.StatusOK, result) // Insert acknowledgement with the new id
	}
}
