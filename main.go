package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	config "github.com/mwenda/events-platform-go/config"
	"github.com/mwenda/events-platform-go/logger"
	repository "github.com/mwenda/events-platform-go/repository"
	routes "github.com/mwenda/events-platform-go/routes"
	utils "github.com/mwenda/events-platform-go/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Continuing...")
	}

	cfg := config.Load()

	ctx := context.Background()
	if err := cfg.ConnectMongo(ctx); err != nil {
		log.Fatalf("mongodb connection failed: %v", err)
	}
	defer cfg.CloseMongo(ctx)

	db := cfg.Database()
	if err := repository.EnsureEventIndexes(ctx, db); err != nil {
		log.Fatalf("index setup failed: %v", err)
	}

	up, err := utils.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("cloudinary setup failed: %v", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	routes.SetupRoutes(r, repository.NewEventRepository(db), repository.NewBookingRepository(db), up)

	logger.Log.Info("[main] starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
