package main

import (
	"context" // Context for the seeding run

	"github.com/borhan98/UniFood-Server/internal/config" // Custom import path (Config)
	"github.com/borhan98/UniFood-Server/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for seeding a fresh deployment
func main() {
	cfg := config.LoadConfig() // Load configuration

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI) // Connect to MongoDB
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db.Seed(ctx, client.Database(cfg.DBName)) // Unique email index + default packages
}
