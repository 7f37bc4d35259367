package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amigos-con-cola/config"
	deliveryHttp "amigos-con-cola/internal/delivery/http"
	"amigos-con-cola/internal/delivery/http/handler"
	"amigos-con-cola/internal/delivery/http/middleware"
	domainRepo "amigos-con-cola/internal/domain/repository"
	"amigos-con-cola/internal/infrastructure/cache"
	"amigos-con-cola/internal/infrastructure/database"
	"amigos-con-cola/internal/repository"
	"amigos-con-cola/internal/usecase"
	"amigos-con-cola/pkg/jwt"
	"amigos-con-cola/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const configFile = ".env"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logrus.Info("Database schema migrated")
	}

	// Initialize Redis
	animalCache := cache.NewNoopAnimalCache()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		animalCache = cache.NewRedisAnimalCache(redisClient, cfg.Redis.CacheTTL)
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Info("Redis disabled, animal cache off")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, animalCache)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, animalCache domainRepo.AnimalCache) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	animalRepo := repository.NewAnimalRepository(db)
	aseoRepo := repository.NewAseoRepository(db)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	animalUsecase := usecase.NewAnimalUsecase(log, animalRepo, animalCache)
	aseoUsecase := usecase.NewAseoUsecase(log, aseoRepo)

	// Initialize handlers
	animalHandler := handler.NewAnimalHandler(animalUsecase, customValidator)
	aseoHandler := handler.NewAseoHandler(aseoUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(animalHandler, aseoHandler, authMiddleware, corsMiddleware, loggingMiddleware)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
