package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/linkup-app/backend/internal/cache"
	"github.com/linkup-app/backend/internal/handlers"
	"github.com/linkup-app/backend/internal/middleware"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
	"github.com/linkup-app/backend/internal/services"
	"github.com/linkup-app/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	pgdb *gorm.DB,
	mgClient *mongo.Client,
	feedCache cache.FeedCache,
	firebaseAuthClient *auth.Client,
	logger *zap.Logger,
) error {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(
		&models.User{},
		&models.Notification{},
	); err != nil {
		return err
	}
	logger.Info("PostgreSQL auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	mgdb := mgClient.Database(cfg.MongoDatabase)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	profileRepo := repositories.NewMongoProfileRepository(mgClient, mgdb)
	postRepo := repositories.NewMongoPostRepository(mgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Initialize Services ---
	graphService := services.NewGraphService(profileRepo, notificationRepo, feedCache, logger)
	feedService := services.NewFeedService(profileRepo, postRepo, feedCache, logger)
	engagementService := services.NewEngagementService(postRepo, logger)
	postService := services.NewPostService(postRepo, feedCache, logger)
	profileService := services.NewProfileService(profileRepo, postRepo, userRepo, feedCache, logger)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, profileRepo, firebaseAuthClient, cfg.JWTSecret, logger)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes ---
	// With Firebase configured, protected routes accept a Firebase ID token
	// as an alternative to the local JWT.
	api := e.Group("/api/v1")
	if firebaseAuthClient != nil {
		api.Use(middleware.AuthMiddleware(cfg.JWTSecret, firebaseAuthClient, userRepo))
	} else {
		api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	}

	profileHandler := handlers.NewProfileHandler(profileService, graphService, logger)
	profileHandler.RegisterProfileRoutes(api)

	feedHandler := handlers.NewFeedHandler(feedService, logger)
	feedHandler.RegisterFeedRoutes(api)

	postHandler := handlers.NewPostHandler(postService, logger)
	postHandler.RegisterPostRoutes(api)

	engagementHandler := handlers.NewEngagementHandler(engagementService, logger)
	engagementHandler.RegisterEngagementRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, logger)
	notificationHandler.RegisterNotificationRoutes(api)

	logger.Info("All routes configured")
	return nil
}
