package db

import (
	"context" // Context for store operations

	"github.com/borhan98/UniFood-Server/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library

	"go.mongodb.org/mongo-driver/bson"          // BSON documents
	"go.mongodb.org/mongo-driver/mongo"         // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options" // Index options
)

// defaultPackages are the subscription tiers offered at launch
var defaultPackages = []domain.Package{
	{Name: "Silver", Price: 8.99, Perks: []string{"Up to 5 meal requests", "Review badge"}},
	{Name: "Gold", Price: 14.99, Perks: []string{"Up to 15 meal requests", "Review badge", "Priority delivery"}},
	{Name: "Platinum", Price: 24.99, Perks: []string{"Unlimited meal requests", "Review badge", "Priority delivery", "Free drinks"}},
}

// Seed prepares a fresh deployment: it enforces email uniqueness on the
// users collection and inserts the default subscription packages.
// The unique index hardens the registration check-then-act sequence,
// which is not atomic on its own
func Seed(ctx context.Context, database *mongo.Database) {
	users := database.Collection(ColUsers)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logrus.Fatalf("failed to create unique email index: %v", err) // Log fatal error if indexing fails
	}

	packages := database.Collection(ColPackages)
	count, err := packages.CountDocuments(ctx, bson.M{})
	if err != nil {
		logrus.Fatalf("failed to count packages: %v", err)
	}
	if count > 0 {
		logrus.Info("Packages already seeded, skipping.")
		return
	}
	for _, p := range defaultPackages {
		if _, err := packages.InsertOne(ctx, p); err != nil {
			logrus.Fatalf("failed to seed package %s: %v", p.Name, err)
		}
	}
	logrus.Info("Seeding completed.") // Log successful seeding
}
