package api

import (
	"net/http" // HTTP status codes

	"github.com/borhan98/UniFood-Server/internal/db"         // Document store access
	"github.com/borhan98/UniFood-Server/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// RegisterRoutes wires the full route table onto the router. The store,
// cache client and JWT secret are injected so tests can run the exact
// dispatch chain against an in-memory store
func RegisterRoutes(r *gin.Engine, store db.Store, rdb *redis.Client, jwtSecret string) {
	authn := middleware.JWTAuthMiddleware(jwtSecret)   // Identity: who you are
	adminOnly := middleware.AdminOnlyMiddleware(store) // Authorization: what you may do
	selfOnly := middleware.SelfOnlyMiddleware()        // Path email must match token email

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "UniFood is running")
	})

	// JWT routes
	r.POST("/jwt", IssueTokenHandler(jwtSecret)) // Issue a signed token

	// User routes. The static /users/admin segment takes priority over the
	// :email param for two-segment paths
	r.GET("/users", authn, adminOnly, ListUsersHandler(store))                   // List all users
	r.GET("/users/admin/:email", authn, selfOnly, AdminStatusHandler(store))     // Own admin status
	r.GET("/users/:email", GetUserHandler(store))                                // Fetch one user
	r.POST("/users", RegisterUserHandler(store))                                 // Register if new
	r.PATCH("/users/admin/:email", authn, adminOnly, PromoteAdminHandler(store)) // Promote to admin
	r.PATCH("/users/:email", UpdateBadgeHandler(store))                          // Set badge from package

	// Meal routes
	r.GET("/meals", ListMealsHandler(store, rdb))                           // List with optional filters
	r.GET("/meals/:id", GetMealHandler(store))                              // Fetch one meal
	r.POST("/meals", authn, adminOnly, CreateMealHandler(store))            // Create meal
	r.PATCH("/meals/:id", UpdateMealCountersHandler(store))                 // Adjust counters
	r.POST("/upcoming", authn, adminOnly, CreateUpcomingMealHandler(store)) // Create upcoming meal

	// Review routes
	r.GET("/reviews", ListReviewsHandler(store))                // List, optional author filter
	r.GET("/reviews/:id", ListMealReviewsHandler(store))        // Reviews for a meal
	r.GET("/oneReview/:id", GetReviewHandler(store))            // Fetch one review
	r.PUT("/oneReview/:id", authn, UpsertReviewHandler(store))  // Create-or-replace by id
	r.POST("/reviews", CreateReviewHandler(store))              // Create review
	r.DELETE("/reviews/:id", authn, DeleteReviewHandler(store)) // Delete review

	// Package routes
	r.GET("/packages", ListPackagesHandler(store, rdb)) // List packages
	r.GET("/packages/:id", GetPackageHandler(store))    // Fetch one package

	// Request routes
	r.GET("/request", ListRequestsHandler(store))         // List, optional requester filter
	r.POST("/request", CreateRequestHandler(store))       // Create request
	r.DELETE("/request/:id", DeleteRequestHandler(store)) // Delete by primary id
}
