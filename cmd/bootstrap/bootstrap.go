package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-history-service/config"
	deliveryHttp "medical-history-service/internal/delivery/http"
	"medical-history-service/internal/delivery/http/handler"
	"medical-history-service/internal/delivery/http/middleware"
	"medical-history-service/internal/domain/entity"
	"medical-history-service/internal/infrastructure/cache"
	"medical-history-service/internal/infrastructure/database"
	"medical-history-service/internal/repository"
	"medical-history-service/internal/seed"
	"medical-history-service/internal/service"
	"medical-history-service/internal/usecase"
	"medical-history-service/pkg/jwt"
	"medical-history-service/pkg/validator"

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

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seed.Run(db, logrus.StandardLogger()); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

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

// migrate keeps the schema in step with the entity definitions. Parents
// first so the foreign keys resolve.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.User{},
		&entity.Diagnosis{},
		&entity.MedicalVisit{},
		&entity.SickLeave{},
		&entity.AuditLog{},
	)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	diagnosisRepo := repository.NewDiagnosisRepository()
	visitRepo := repository.NewMedicalVisitRepository()
	sickLeaveRepo := repository.NewSickLeaveRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	statsCache := service.NewStatsCacheService(redisClient, log, cfg.Cache.StatsTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, doctorRepo, auditService, statsCache)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, auditService, statsCache)
	diagnosisUsecase := usecase.NewDiagnosisUsecase(db, log, diagnosisRepo, auditService)
	visitUsecase := usecase.NewMedicalVisitUsecase(db, log, visitRepo, patientRepo, doctorRepo, diagnosisRepo, auditService, statsCache)
	sickLeaveUsecase := usecase.NewSickLeaveUsecase(db, log, sickLeaveRepo, visitRepo, auditService, statsCache)
	reportUsecase := usecase.NewReportUsecase(db, log, patientRepo, doctorRepo, visitRepo, sickLeaveRepo, statsCache)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisUsecase, customValidator)
	visitHandler := handler.NewMedicalVisitHandler(visitUsecase, customValidator)
	sickLeaveHandler := handler.NewSickLeaveHandler(sickLeaveUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		doctorHandler,
		diagnosisHandler,
		visitHandler,
		sickLeaveHandler,
		reportHandler,
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
