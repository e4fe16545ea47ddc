package router

import (
	"context"
	"log"
	"time"

	"github.com/graceyoon00/MiniWall/internal/handlers"
	"github.com/graceyoon00/MiniWall/internal/middleware"
	"github.com/graceyoon00/MiniWall/internal/repositories"
	"github.com/graceyoon00/MiniWall/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, cfg *config.Config) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Hello, World!"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)
	likeRepo := repositories.NewMongoLikeRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := likeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create like indexes: %v", err)
	}
	log.Println("MongoDB indexes ensured.")

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/user")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.TokenSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require a verified token) ---
	api := e.Group("/api", middleware.JWTAuth(cfg.TokenSecret))

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)
	// Like counts are public and skip token verification
	likeHandler.RegisterPublicLikeRoutes(e.Group("/api"))
	log.Println("Like routes configured.")

	log.Println("All routes configured.")
}
