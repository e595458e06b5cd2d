package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink-backend/config"
	deliveryHttp "carelink-backend/internal/delivery/http"
	"carelink-backend/internal/delivery/http/handler"
	"carelink-backend/internal/delivery/http/middleware"
	"carelink-backend/internal/infrastructure/cache"
	"carelink-backend/internal/infrastructure/database"
	"carelink-backend/internal/infrastructure/media"
	"carelink-backend/internal/repository"
	"carelink-backend/internal/service"
	"carelink-backend/internal/usecase"
	"carelink-backend/pkg/jwt"
	"carelink-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

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

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize media store
	mediaStore, err := media.NewCloudinaryStore(cfg.Cloudinary)
	if err != nil {
		return nil, fmt.Errorf("failed to init media store: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, mediaStore)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, mediaStore media.Store) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorDirectoryRepo := repository.NewDoctorDirectoryRepository()
	patientDirectoryRepo := repository.NewPatientDirectoryRepository()
	blogRepo := repository.NewBlogRepository()
	referralRepo := repository.NewReferralRepository()
	partnerRepo := repository.NewChannelPartnerRepository()
	planRepo := repository.NewSubscriptionPlanRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	adminUserUsecase := usecase.NewAdminUserUsecase(db, log, userRepo, auditService)
	doctorDirectoryUsecase := usecase.NewDoctorDirectoryUsecase(db, log, doctorDirectoryRepo)
	patientDirectoryUsecase := usecase.NewPatientDirectoryUsecase(db, log, patientDirectoryRepo)
	blogUsecase := usecase.NewBlogUsecase(db, log, blogRepo, mediaStore)
	referralUsecase := usecase.NewReferralUsecase(db, log, referralRepo, partnerRepo, auditService)
	planUsecase := usecase.NewSubscriptionPlanUsecase(db, log, planRepo, auditService)

	// Initialize handlers
	adminUserHandler := handler.NewAdminUserHandler(adminUserUsecase, customValidator)
	doctorDirectoryHandler := handler.NewDoctorDirectoryHandler(doctorDirectoryUsecase)
	patientDirectoryHandler := handler.NewPatientDirectoryHandler(patientDirectoryUsecase)
	blogHandler := handler.NewBlogHandler(blogUsecase, customValidator)
	referralHandler := handler.NewReferralHandler(referralUsecase, customValidator)
	planHandler := handler.NewSubscriptionPlanHandler(planUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(adminUserHandler, doctorDirectoryHandler, patientDirectoryHandler, blogHandler, referralHandler, planHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
