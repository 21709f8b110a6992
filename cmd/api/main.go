package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/config"
	"github.com/shashiranjanraj/kashvi-golang/internal/database"
	"github.com/shashiranjanraj/kashvi-golang/internal/handlers"
	"github.com/shashiranjanraj/kashvi-golang/internal/logger"
	"github.com/shashiranjanraj/kashvi-golang/internal/routes"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

func main() {
	// 1. --- Configuration (.env honored in development) ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.Get(cfg.Server.Env)
	defer zlog.Sync()

	// 2. --- Database Connection ---
	// One client for the process lifetime; the store hands out collection
	// access to the handlers.
	client, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	zlog.Info("Connected to MongoDB",
		zap.String("database", cfg.Database.Name),
	)

	// 3. --- Application Setup ---
	app := &handlers.Handlers{
		Store:  store.New(client, cfg.Database.Name),
		Config: cfg,
		Log:    zlog,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, cfg)

	// --- Start Server ---
	zlog.Info("Starting Kashvi Jewels API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
