package api

import (
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"github.com/borhan98/UniFood-Server/internal/db"    // Document store access
	"github.com/borhan98/UniFood-Server/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"                   // Gin web framework
	"github.com/redis/go-redis/v9"               // Redis client
	"go.mongodb.org/mongo-driver/bson"           // BSON filters
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID parsing
)

// packageCacheTTL bounds how stale the package listing may get;
// packages change only when reseeded
const packageCacheTTL = 60 * time.Second

// ListPackagesHandler returns every subscription package, cached briefly
func ListPackagesHandler(store db.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cacheKey := utils.CacheKey("packages", "all")
		var cached []bson.M
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		packages, err := store.Packages().Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"}) // Return on error
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, packages, packageCacheTTL)
		c.JSON(http.StatusOK, packages)
	}
}

// GetPackageHandler returns a single package by id
func GetPackageHandler(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id")) // Parse the id path parameter
		if err != nil {
			// A malformed id is a backend failure, not a user-facing case
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid package id"})
			return
		}
		var pkg bson.M // Returned verbatim, whatever fields are stored
		err = store.Packages().FindOne(c.Request.Context(), bson.M{"_id": id}, &pkg)
		if err == db.ErrNoDocument {
			c.JSON(http.StatusOK, nil) // Mirror the store's null result for a miss
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch package"})
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}
