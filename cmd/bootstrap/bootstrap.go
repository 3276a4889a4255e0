package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carepoint-backend/config"
	deliveryHttp "carepoint-backend/internal/delivery/http"
	"carepoint-backend/internal/delivery/http/handler"
	"carepoint-backend/internal/delivery/http/middleware"
	"carepoint-backend/internal/infrastructure/cache"
	"carepoint-backend/internal/infrastructure/database"
	"carepoint-backend/internal/repository"
	"carepoint-backend/internal/usecase"
	"carepoint-backend/pkg/jwt"
	"carepoint-backend/pkg/validator"

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

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

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

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	hospitalRepo := repository.NewHospitalRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	scheduleRepo := repository.NewDoctorScheduleRepository()
	availabilityRepo := repository.NewDoctorAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	categoryRepo := repository.NewCategoryRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	cartRepo := repository.NewCartRepository(redisClient)
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditRepo, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, hospitalRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, userRepo)
	scheduleUsecase := usecase.NewDoctorScheduleUsecase(db, log, scheduleRepo, doctorRepo)
	availabilityUsecase := usecase.NewDoctorAvailabilityUsecase(db, log, availabilityRepo, scheduleRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, hospitalRepo, availabilityRepo, auditRepo)
	categoryUsecase := usecase.NewCategoryUsecase(db, log, categoryRepo)
	productUsecase := usecase.NewProductUsecase(db, log, productRepo, categoryRepo)
	cartUsecase := usecase.NewCartUsecase(db, log, cartRepo, productRepo)
	orderUsecase := usecase.NewOrderUsecase(db, log, orderRepo, cartRepo, auditRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	scheduleHandler := handler.NewDoctorScheduleHandler(scheduleUsecase, customValidator)
	availabilityHandler := handler.NewDoctorAvailabilityHandler(availabilityUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	categoryHandler := handler.NewCategoryHandler(categoryUsecase, customValidator)
	productHandler := handler.NewProductHandler(productUsecase, customValidator)
	cartHandler := handler.NewCartHandler(cartUsecase, customValidator)
	orderHandler := handler.NewOrderHandler(orderUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		hospitalHandler,
		doctorHandler,
		patientHandler,
		scheduleHandler,
		availabilityHandler,
		appointmentHandler,
		categoryHandler,
		productHandler,
		cartHandler,
		orderHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
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
