// main.go
package main

import (
	"context"
	"log"
	"time"

	"beauty-go/cmd"
	"beauty-go/internal/data/repository"
	"beauty-go/internal/wire"
	"beauty-go/pkg/auth"
	"beauty-go/pkg/cache"
	"beauty-go/pkg/database"
	"beauty-go/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis is optional; without it the admin dashboard just recomputes
	// its aggregates on every request.
	var statsCache cache.Cache
	if config.Redis.Addr != "" {
		redisCache := cache.NewRedis(config.Redis.Addr, config.Redis.Password, config.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable, stats caching disabled", zap.Error(err))
		} else {
			statsCache = redisCache
			logger.Info("Redis connected successfully")
		}
		cancel()
	}

	// Token manager
	jwtManager := auth.NewManager(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
		config.JWT.Issuer,
	)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, jwtManager, statsCache, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
