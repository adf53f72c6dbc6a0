// cmd/resource-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/kparekh77/api-project-template/internal/api/rest/middleware"
	v1 "github.com/kparekh77/api-project-template/internal/api/rest/v1"
	"github.com/kparekh77/api-project-template/internal/app"
	"github.com/kparekh77/api-project-template/internal/domain/resources"
	"github.com/kparekh77/api-project-template/internal/infrastructure/connector"
	"github.com/kparekh77/api-project-template/internal/infrastructure/persistence"
	"github.com/kparekh77/api-project-template/internal/infrastructure/persistence/models"
	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// dbPasswordPlaceholder is replaced in the DSN with the resolved secret value.
const dbPasswordPlaceholder = "${DB_PASSWORD}"

// Paths exempt from the kill switch and request logging.
var excludedPaths = []string{"/health", "/ready", "/metrics"}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Layer dotenv files under deployment-environment precedence
	envDir := os.Getenv("ENV_DIR")
	if envDir == "" {
		envDir = "environment"
	}
	if err := config.LoadEnvironment(envDir, nil); err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}

	// Parse configuration
	configPath := os.Getenv(config.ConfigPathVar)
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
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

	log.Info(fmt.Sprintf("Starting %s %s (%s environment)", restConfig.App.Name, restConfig.App.Version, restConfig.App.Environment))

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	resourceCreate   resources.ResourceCreateService
	resourceMetadata resources.ResourceMetadataService
	resourceUpdate   resources.ResourceUpdateService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	ctx := context.Background()

	// Resolve the database password before opening the connection
	if err := resolveDatabasePassword(ctx, cfg, log); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.ResourceModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	resourceRepo, err := persistence.NewGormResourceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource repository: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(resourceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// resolveDatabasePassword replaces the DSN password placeholder with the value
// fetched from the secret manager. Without a configured secret the DSN is used
// as-is.
func resolveDatabasePassword(ctx context.Context, cfg *config.RestConfig, log logger.Logger) error {
	if cfg.Database.PasswordSecret == "" {
		return nil
	}
	if cfg.SecretManager == nil {
		return fmt.Errorf("database password secret %s configured without a secret manager", cfg.Database.PasswordSecret)
	}

	resolver, err := connector.NewGcpSecretResolver(ctx, cfg.SecretManager, log)
	if err != nil {
		return fmt.Errorf("failed to create secret resolver: %w", err)
	}
	defer func() {
		if closeErr := resolver.Close(); closeErr != nil {
			log.Warn("failed to close secret resolver: ", closeErr)
		}
	}()

	password, err := resolver.Resolve(ctx, cfg.Database.PasswordSecret)
	if err != nil {
		return fmt.Errorf("failed to resolve database password: %w", err)
	}

	cfg.Database.DSN = strings.ReplaceAll(cfg.Database.DSN, dbPasswordPlaceholder, password)
	log.Info("Database password resolved from secret manager")
	return nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowOrigins,
		AllowMethods:     cfg.Cors.AllowMethods,
		AllowHeaders:     cfg.Cors.AllowHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: cfg.Cors.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Cross-cutting middleware
	r.Use(middleware.Traceability())
	r.Use(middleware.RequestLogging(log, excludedPaths))
	r.Use(middleware.KillSwitch(log, cfg.KillSwitch.ConfigPath, excludedPaths))
	r.Use(middleware.Metrics())

	// Setup API routes
	v1.SetupRoutes(r,
		deps.db,
		deps.services.resourceCreate,
		deps.services.resourceMetadata,
		deps.services.resourceUpdate,
	)

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve OpenAPI spec
	r.GET("/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/resource-api.yaml")
	})

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

	if err := persistence.CloseDB(deps.db); err != nil {
		log.Warn("failed to close database connection: ", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(resourceRepo resources.ResourceRepository, log logger.Logger) (*appServices, error) {
	resourceCreateService, err := app.NewResourceCreateService(resourceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource create service: %w", err)
	}

	resourceMetadataService, err := app.NewResourceMetadataService(resourceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource metadata service: %w", err)
	}

	resourceUpdateService, err := app.NewResourceUpdateService(resourceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource update service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		resourceCreate:   resourceCreateService,
		resourceMetadata: resourceMetadataService,
		resourceUpdate:   resourceUpdateService,
	}, nil
}
