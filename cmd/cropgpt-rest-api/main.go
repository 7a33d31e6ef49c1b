// cmd/cropgpt-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/manavaditya8-pixel/cropGPT/internal/api/rest/v1"
	"github.com/manavaditya8-pixel/cropGPT/internal/app"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/assistant"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/users"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/connector"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	chat        chat.ChatService
	user        users.UserService
	price       markets.PriceService
	alert       markets.AlertService
	weather     weather.WeatherService
	scheme      schemes.SchemeService
	application schemes.ApplicationService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	conversationRepo, err := persistence.NewGormConversationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation repository: %w", err)
	}
	priceRepo, err := persistence.NewGormPriceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create price repository: %w", err)
	}
	alertRepo, err := persistence.NewGormAlertRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert repository: %w", err)
	}
	observationRepo, err := persistence.NewGormObservationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create observation repository: %w", err)
	}
	schemeRepo, err := persistence.NewGormSchemeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheme repository: %w", err)
	}
	applicationRepo, err := persistence.NewGormApplicationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create application repository: %w", err)
	}

	// Initialize connectors. Each one is optional; a missing API key or
	// endpoint degrades the related service instead of failing startup.
	ctx := context.Background()

	var generator assistant.Generator
	if cfg.LLM.Enabled() {
		generator, err = connector.NewLLMConnector(ctx, &cfg.LLM, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create llm connector: %w", err)
		}
		log.Info("LLM connector initialized for model ", cfg.LLM.Model)
	} else {
		log.Info("No LLM endpoint configured, assistant runs on the response catalog")
	}

	var weatherConnector weather.WeatherConnector
	if cfg.Weather.APIKey != "" {
		weatherConnector, err = connector.NewOpenWeatherConnector(&cfg.Weather, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create weather connector: %w", err)
		}
	} else {
		log.Info("No weather API key configured, serving stored observations only")
	}

	var marketConnector markets.MarketConnector
	if cfg.Market.APIKey != "" {
		marketConnector, err = connector.NewAgmarknetConnector(&cfg.Market, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create market connector: %w", err)
		}
	} else {
		log.Info("No market API key configured, price refresh is disabled")
	}

	// Initialize services
	chatService, err := app.NewChatService(generator, assistant.NewCatalog(time.Now().UnixNano()), conversationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}
	userService, err := app.NewUserService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	priceService, err := app.NewPriceService(priceRepo, marketConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create price service: %w", err)
	}
	alertService, err := app.NewAlertService(alertRepo, priceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert service: %w", err)
	}
	weatherService, err := app.NewWeatherService(observationRepo, weatherConnector, cfg.Weather, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather service: %w", err)
	}
	schemeService, err := app.NewSchemeService(schemeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheme service: %w", err)
	}
	applicationService, err := app.NewApplicationService(applicationRepo, schemeRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create application service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		chat:        chatService,
		user:        userService,
		price:       priceService,
		alert:       alertService,
		weather:     weatherService,
		scheme:      schemeService,
		application: applicationService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		services.chat,
		services.user,
		services.price,
		services.alert,
		services.weather,
		services.scheme,
		services.application,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
