package db

import (
	"context" // Context for store operations

	"github.com/sirupsen/logrus"                 // Logging library
	"go.mongodb.org/mongo-driver/bson"           // BSON documents
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Client and operation options
	"go.mongodb.org/mongo-driver/mongo/readpref" // Read preference for ping
)

// Connect opens the single long-lived MongoDB client shared by all requests
// and pings the deployment to confirm connectivity
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))) // Stable API v1
	if err != nil {
		return nil, err // Connection setup failed
	}
	// Ping to confirm a successful connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	logrus.Info("Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

// MongoStore is the production Store backed by a MongoDB database
type MongoStore struct {
	db *mongo.Database // Shared database handle
}

// NewMongoStore wraps a database handle as a Store
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Users() Collection         { return &mongoCollection{col: s.db.Collection(ColUsers)} }
func (s *MongoStore) Meals() Collection         { return &mongoCollection{col: s.db.Collection(ColMeals)} }
func (s *MongoStore) UpcomingMeals() Collection { return &mongoCollection{col: s.db.Collection(ColUpcomingMeals)} }
func (s *MongoStore) Reviews() Collection       { return &mongoCollection{col: s.db.Collection(ColReviews)} }
func (s *MongoStore) Packages() Collection      { return &mongoCollection{col: s.db.Collection(ColPackages)} }
func (s *MongoStore) Requests() Collection      { return &mongoCollection{col: s.db.Collection(ColRequests)} }

// mongoCollection adapts a *mongo.Collection to the Collection interface
type mongoCollection struct {
	col *mongo.Collection // Underlying driver collection
}

// Find returns all documents matching the filter
func (c *mongoCollection) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cur, err := c.col.Find(ctx, filter) // Run the query
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	results := []bson.M{} // Never nil, serializes as [] not null
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// FindOne decodes the first matching document into dest
func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, dest any) error {
	err := c.col.FindOne(ctx, filter).Decode(dest)
	if err == mongo.ErrNoDocuments {
		return ErrNoDocument // Translate the driver sentinel
	}
	return err
}

// InsertOne inserts a single document
func (c *mongoCollection) InsertOne(ctx context.Context, doc any) (*InsertOneResult, error) {
	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertOneResult{InsertedID: res.InsertedID}, nil
}

// UpdateOne applies the update to the first matching document
func (c *mongoCollection) UpdateOne(ctx context.Context, filter, update bson.M, upsert bool) (*UpdateResult, error) {
	res, err := c.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		MatchedCount:  res.MatchedCount,  // Documents matching the filter
		ModifiedCount: res.ModifiedCount, // Documents actually modified
		UpsertedCount: res.UpsertedCount, // Documents created by upsert
		UpsertedID:    res.UpsertedID,    // Id created by upsert, if any
	}, nil
}

// DeleteOne removes the first matching document
func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error) {
	res, err := c.col.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
