package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mwenda/events-platform-go/logger"
)

type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	AllowedOrigins []string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	MongoClient *mongo.Client
}

// Load reads configuration from the environment. godotenv is expected to
// have populated it from .env already (done in main).
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		MongoURI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:              getEnv("DB_NAME", "events_platform"),
		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}

// ConnectMongo establishes the shared Mongo client and verifies it with a
// ping. The handle lives on the Config and is reused by every repository.
func (cfg *Config) ConnectMongo(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("error pinging mongodb: %w", err)
	}

	logger.Log.Info("[config] connected to mongodb", "db", cfg.DBName)
	cfg.MongoClient = client
	return nil
}

// Database returns the application database handle.
func (cfg *Config) Database() *mongo.Database {
	return cfg.MongoClient.Database(cfg.DBName)
}

// CloseMongo disconnects the shared client.
func (cfg *Config) CloseMongo(ctx context.Context) {
	if cfg.MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cfg.MongoClient.Disconnect(ctx); err != nil {
		logger.Log.Error("[config] mongodb disconnect failed", "err", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
