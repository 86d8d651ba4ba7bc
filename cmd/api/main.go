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

	pkgvalidator "github.com/einsteinmuna/dialoguedesk/pkg/validator"

	"github.com/einsteinmuna/dialoguedesk/internal/adapter/handler"
	"github.com/einsteinmuna/dialoguedesk/internal/adapter/repository"
	"github.com/einsteinmuna/dialoguedesk/internal/infrastructure/cache"
	"github.com/einsteinmuna/dialoguedesk/internal/infrastructure/database"
	"github.com/einsteinmuna/dialoguedesk/internal/infrastructure/storage"
	"github.com/einsteinmuna/dialoguedesk/internal/usecase/chat"
	"github.com/einsteinmuna/dialoguedesk/internal/usecase/insight"
	"github.com/einsteinmuna/dialoguedesk/pkg/config"
	"github.com/einsteinmuna/dialoguedesk/pkg/jwt"
	"github.com/einsteinmuna/dialoguedesk/pkg/llm"
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
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	complaintRepo := repository.NewComplaintRepository(db)
	insightRepo := repository.NewMeetingInsightRepository(db)

	// Initialize completion client
	log.Println("🤖 Initializing completion client...")
	llmClient := llm.NewOpenAIClient(&cfg.OpenAI)

	// Initialize recording archive (optional)
	var archive insight.Archiver
	if cfg.Storage.Enabled {
		log.Println("🗄️  Initializing recording archive...")
		recordingArchive, err := storage.NewRecordingArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize recording archive: %v", err)
		}
		archive = recordingArchive
	} else {
		log.Println("🗄️  Recording archive disabled")
	}

	// Initialize chat service
	log.Println("💬 Initializing chat service...")
	history := cache.NewRedisHistory(redisClient, 20, 24*time.Hour)
	extractor := chat.NewExtractor(llmClient)
	chatService := chat.NewService(extractor, complaintRepo, history, logger)

	// Initialize insight service
	log.Println("📋 Initializing insight service...")
	insightService := insight.NewService(llmClient, llmClient, archive, insightRepo, logger)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.Dashboard.JWTSecret, cfg.Dashboard.TokenExpiry)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	chatHandler := handler.NewChat(chatService, logger)
	meetingHandler := handler.NewMeeting(insightService, logger)
	authHandler := handler.NewAuth(cfg, jwtManager, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager, chatHandler, meetingHandler, authHandler)
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
