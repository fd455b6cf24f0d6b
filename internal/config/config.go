package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort   string // Application port
	MongoURI  string // MongoDB connection string
	DBName    string // MongoDB database name
	JWTSecret string // JWT signing secret
	RedisAddr string // Redis server address
	RedisPass string // Redis password
	RedisDB   int    // Redis database number
	IsProd    bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:   os.Getenv("APP_PORT"),          // Application port
		MongoURI:  os.Getenv("MONGO_URI"),         // MongoDB connection string
		DBName:    os.Getenv("DB_NAME"),           // MongoDB database name
		JWTSecret: os.Getenv("JWT_SECRET"),        // JWT signing secret
		RedisAddr: os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass: os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:   redisDB,                        // Redis database number
		IsProd:    os.Getenv("IS_PROD") == "true", // Is production environment
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "5000" // Default application port
	}
	if cfg.DBName == "" {
		cfg.DBName = "UniFood" // Default database name
	}
	return cfg
}
