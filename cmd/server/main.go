package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sync-backend/internal/auth"
	"sync-backend/internal/cache"
	"sync-backend/internal/config"
	"sync-backend/internal/database"
	"sync-backend/internal/db"
	"sync-backend/internal/handlers"
	"sync-backend/internal/health"
	h "sync-backend/internal/http"
	"sync-backend/internal/middleware"
	"sync-backend/internal/pairing"
	"sync-backend/internal/repositories"
	"sync-backend/internal/services"
	"sync-backend/migrations"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()
	log.Info().
		Str("host", cfg.Database.Host).
		Str("name", cfg.Database.Name).
		Msg("connected to database")

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog downloads will hit the database")
	} else {
		log.Info().Msg("redis cache connected")
	}

	// Run database migrations
	// Uses embedded migrations for standalone binary operation
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize health checker and JWT manager
	healthChecker := health.NewHealthChecker(pool)
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	catalogRepo := repositories.NewCatalogRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	catalogService := services.NewCatalogService(catalogRepo)
	orderService := services.NewOrderService(orderRepo)

	// Companion process manager used by pairing
	pairManager := pairing.NewManager(cfg.Pairing.ServiceName, cfg.Pairing.ServiceDir)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		handlers.NewPairHandler(cfg, pairManager),
		handlers.NewAuthHandler(userService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewOrderHandler(orderService),
		handlers.NewStatusHandler(cfg),
		handlers.NewHealthHandler(healthChecker),
		authMiddleware,
	)

	// Wrap with panic recovery, request logging and metrics middleware
	handler := middleware.PanicRecovery(
		middleware.RequestLogging(
			middleware.MetricsMiddleware(
				corsMiddleware(router))))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
