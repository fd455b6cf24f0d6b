package main

import (
	"context"  // Context for startup connections
	"log"      // log package is needed for logging
	"net/http" // HTTP status codes

	"github.com/borhan98/UniFood-Server/internal/api"    // Custom package for API handlers
	"github.com/borhan98/UniFood-Server/internal/config" // Custom package for configuration
	"github.com/borhan98/UniFood-Server/internal/db"     // Custom package for the document store

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to MongoDB; the client lives for the whole process
	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err) // Fatal error if DB connection fails
	}
	store := db.NewMongoStore(client.Database(cfg.DBName)) // Injected store handle

	// Setup Redis client, optional response cache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()      // Gin router instance
	r.Use(gin.Logger()) // Request logging
	// Uniform catch-all boundary: a panicking handler still answers 500
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}))

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Wire the full route table with injected dependencies
	api.RegisterRoutes(r, store, redisClient, cfg.JWTSecret)

	log.Println("UniFood is running on port " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                                 // Start the server on port cfg.AppPort
}
