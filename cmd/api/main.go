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

	pkgvalidator "github.com/meetingflow-team/meeting-publisher/pkg/validator"

	"github.com/meetingflow-team/meeting-publisher/internal/adapter/handler"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/fireflies"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/linkedin"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/twitter"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/wordpress"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/keyvalue"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/credentials"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/publisher"
	"github.com/meetingflow-team/meeting-publisher/pkg/config"
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
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize credential store backend
	log.Printf("📦 Initializing %s credential store...", cfg.Store.Backend)
	kv, closeStore, err := newKeyValueStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize credential store: %v", err)
	}
	defer closeStore()
	credStore := credentials.NewStore(kv)

	// Initialize external gateways
	log.Println("🔌 Initializing external gateways...")
	firefliesClient := fireflies.NewClient(&cfg.Fireflies)
	wordpressClient := wordpress.NewClient(&cfg.WordPress)
	linkedinClient := linkedin.NewClient(&cfg.LinkedIn)
	twitterClient := twitter.NewSimulatedClient(&cfg.Twitter)
	log.Println("⚠️  Twitter gateway running in simulated mode (no real API calls)")

	// Initialize publisher service
	log.Println("✨ Initializing publisher service...")
	svc := publisher.NewService(firefliesClient, wordpressClient, linkedinClient, twitterClient, credStore, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(firefliesClient, credStore, logger)
	meetingsHandler := handler.NewMeetings(svc, logger)
	wordpressHandler := handler.NewWordPress(wordpressClient, logger)
	socialHandler := handler.NewSocial(linkedinClient, twitterClient, logger)
	publisherHandler := handler.NewPublisher(svc, credStore, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, authHandler, meetingsHandler, wordpressHandler, socialHandler, publisherHandler)
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

// newKeyValueStore selects the credential store backend from configuration.
// The returned close function is a no-op for the memory and file backends.
func newKeyValueStore(cfg *config.Config) (keyvalue.Store, func(), error) {
	switch cfg.Store.Backend {
	case "file":
		store, err := keyvalue.NewFileStore(cfg.Store.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "redis":
		store, err := keyvalue.NewRedisStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return keyvalue.NewMemoryStore(), func() {}, nil
	}
}
