package db

import (
	"context" // Context for store operations
	"errors"  // Sentinel errors

	"go.mongodb.org/mongo-driver/bson" // BSON documents
)

// Collection names
const (
	ColUsers         = "users"         // User accounts
	ColMeals         = "meals"         // Published meals
	ColUpcomingMeals = "upcomingMeals" // Meals scheduled for publication
	ColReviews       = "reviews"       // Meal reviews
	ColPackages      = "packages"      // Subscription packages
	ColRequests      = "request"       // Meal requests
)

// ErrNoDocument is returned by FindOne when no document matches the filter
var ErrNoDocument = errors.New("db: no matching document")

// InsertOneResult mirrors the document store's insert acknowledgement
type InsertOneResult struct {
	InsertedID any `json:"insertedId"` // Id of the inserted document
}

// UpdateResult mirrors the document store's update acknowledgement
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`         // Documents matching the filter
	ModifiedCount int64 `json:"modifiedCount"`        // Documents actually modified
	UpsertedCount int64 `json:"upsertedCount"`        // Documents created by upsert
	UpsertedID    any   `json:"upsertedId,omitempty"` // Id created by upsert, if any
}

// DeleteResult mirrors the document store's delete acknowledgement
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"` // Documents deleted
}

// Collection is the per-collection operation surface handlers rely on.
// Each method maps to exactly one document-store operation
type Collection interface {
	// Find returns all documents matching the filter
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	// FindOne decodes the first matching document into dest, or returns ErrNoDocument
	FindOne(ctx context.Context, filter bson.M, dest any) error
	// InsertOne inserts a single document
	InsertOne(ctx context.Context, doc any) (*InsertOneResult, error)
	// UpdateOne applies the update to the first matching document,
	// creating it when upsert is set
	UpdateOne(ctx context.Context, filter, update bson.M, upsert bool) (*UpdateResult, error)
	// DeleteOne removes the first matching document
	DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error)
}

// Store exposes the application's collections. It is constructor-injected
// into middleware and handlers so tests can substitute an in-memory store
type Store interface {
	Users() Collection         // User accounts
	Meals() Collection         // Published meals
	UpcomingMeals() Collection // Upcoming meals
	Reviews() Collection       // Meal reviews
	Packages() Collection      // Subscription packages
	Requests() Collection      // Meal requests
}
