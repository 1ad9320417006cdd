package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rmohit9/Healthcare-Portal/config"
	deliveryHttp "github.com/rmohit9/Healthcare-Portal/internal/delivery/http"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/http/handler"
	"github.com/rmohit9/Healthcare-Portal/internal/delivery/http/middleware"
	"github.com/rmohit9/Healthcare-Portal/internal/infrastructure/cache"
	"github.com/rmohit9/Healthcare-Portal/internal/infrastructure/database"
	"github.com/rmohit9/Healthcare-Portal/internal/repository"
	"github.com/rmohit9/Healthcare-Portal/internal/service"
	"github.com/rmohit9/Healthcare-Portal/internal/usecase"
	"github.com/rmohit9/Healthcare-Portal/pkg/jwt"
	"github.com/rmohit9/Healthcare-Portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	EventWriter service.KafkaWriter
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	SetupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.MigrateUp(database.MigrationURL(cfg.DB)); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	// Post events are optional
	if len(cfg.Kafka.Brokers) > 0 {
		app.EventWriter = service.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logrus.Infof("Publishing post events to %s", cfg.Kafka.Topic)
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient, app.EventWriter)

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, eventWriter service.KafkaWriter) *http.Server {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	tokenStore := cache.NewRedisTokenStore(redisClient)
	uow := repository.NewUnitOfWork(db)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	categoryRepo := repository.NewCategoryRepository()
	postRepo := repository.NewBlogPostRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	postEvents := service.NewPostEventPublisher(eventWriter, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(uow, log, userRepo, profileRepo, auditService, jwtService, tokenStore)
	categoryUsecase := usecase.NewCategoryUsecase(uow, log, profileRepo, categoryRepo, auditService)
	blogPostUsecase := usecase.NewBlogPostUsecase(uow, log, profileRepo, categoryRepo, postRepo, auditService, postEvents)
	blogQueryUsecase := usecase.NewBlogQueryUsecase(uow, log, profileRepo, categoryRepo, postRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	blogHandler := handler.NewBlogHandler(blogPostUsecase, blogQueryUsecase, customValidator)
	categoryHandler := handler.NewCategoryHandler(categoryUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(authHandler, blogHandler, categoryHandler, authMiddleware, corsMiddleware, loggingMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

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

// Close closes all connections (database, redis, kafka)
func (app *App) Close() {
	if app.EventWriter != nil {
		if err := app.EventWriter.Close(); err != nil {
			logrus.Warnf("Failed to close event writer: %v", err)
		}
	}

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
