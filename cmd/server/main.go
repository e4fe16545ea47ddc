package main

import (
	"log"

	"github.com/graceyoon00/MiniWall/internal/router"
	"github.com/graceyoon00/MiniWall/internal/validators"
	"github.com/graceyoon00/MiniWall/pkg/config"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.TokenSecret == "" {
		log.Fatal("TOKEN_SECRET environment variable not set")
	}

	// Initialize database connection
	db, err := config.InitDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Mongo.Database(cfg.MongoDB), cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
