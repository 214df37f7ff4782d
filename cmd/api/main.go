package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-minutes/pkg/validator"

	"github.com/johnquangdev/meeting-minutes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-minutes/internal/usecase/minutes"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via cmd/migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run migrations via CI/CD.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use cmd/migrate for schema changes in CI/CD/production")
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize reference-data cache
	var refCache cache.Cache
	if cfg.Cache.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		refCache = cache.NewRedisStore(redisClient)
	} else {
		log.Println("⚠️  Cache disabled, using in-process store")
		refCache = cache.NewMemoryStore()
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	repos := repository.NewSet(db)
	repos.MeetingTypes = repository.NewCachedMeetingTypeRepository(repos.MeetingTypes, refCache, cfg.Cache.TTL, logger)
	atomic := repository.NewAtomic(db)

	// Initialize minutes service
	log.Println("📝 Initializing minutes service...")
	minutesService := minutes.NewMinutesService(repos, atomic)

	// Initialize meeting handler
	log.Println("🚀 Initializing meeting handler...")
	meetingHandler := handler.NewMeetingHandler(minutesService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
