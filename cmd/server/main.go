package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/cache"
	"github.com/linkup-app/backend/internal/router"
	"github.com/linkup-app/backend/pkg/config"
	"github.com/linkup-app/backend/pkg/firebase"
	"github.com/linkup-app/backend/pkg/logger"
	"github.com/linkup-app/backend/validators"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize the feed cache
	feedCache, err := cache.NewRedisFeedCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.FeedCacheTTL)
	if err != nil {
		zlog.Fatal("Failed to initialize feed cache", zap.Error(err))
	}
	defer feedCache.Close()

	// Initialize Firebase when credentials are configured; without them the
	// local JWT auth paths still work and firebase-login is not registered.
	var firebaseAuthClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			zlog.Fatal("Failed to initialize Firebase", zap.Error(err))
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		zlog.Warn("Firebase credentials not configured, firebase-login disabled")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, feedCache, firebaseAuthClient, zlog); err != nil {
		zlog.Fatal("Failed to setup routes", zap.Error(err))
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
