package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning_iq/internal/api"
	"learning_iq/internal/app/service"
	"learning_iq/internal/common/security"
	"learning_iq/internal/domain/repository"
	"learning_iq/internal/platform/cache"
	"learning_iq/internal/platform/config"
	"learning_iq/internal/platform/database"
	"learning_iq/internal/platform/logger"
)

func main() {
	// 1. Load Configuration
	config.Load()

	// 2. Initialize Logger
	if err := logger.Init(config.AppConfig.AppEnv); err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("configuration loaded")

	// 3. Initialize JWT
	security.InitJWT()

	// 4. Initialize Database
	database.Connect()
	defer database.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, database.DB); err != nil {
		logger.Fatal("schema setup failed", "err", err)
	}
	if config.AppConfig.SeedDemoData {
		if err := database.SeedDemoData(ctx, database.DB); err != nil {
			logger.Fatal("demo seed failed", "err", err)
		}
	}

	// 5. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()

	// 6. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	catalogRepo := repository.NewPgCatalogRepository(database.DB)
	attemptRepo := repository.NewPgAttemptRepository(database.DB)
	engagementRepo := repository.NewPgEngagementRepository(database.DB)

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	progressService := service.NewProgressService(userRepo, attemptRepo, config.AppConfig.DefaultUserID)
	insightService := service.NewInsightService(userRepo, catalogRepo)
	engagementService := service.NewEngagementService(userRepo, engagementRepo, cache.RDB, config.AppConfig.LeaderboardCacheTTL)

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, catalogService, progressService, insightService, engagementService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "port", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not listen", "port", config.AppConfig.APIPort, "err", err)
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", "err", err)
	}
	logger.Info("server stopped gracefully")
}
