package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawtracks/training-system/internal/api/handler"
	"github.com/pawtracks/training-system/internal/api/middleware"
	"github.com/pawtracks/training-system/internal/core/ports"
	"github.com/pawtracks/training-system/internal/core/service"
	mongodb "github.com/pawtracks/training-system/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Routes registered before the auth group are public; everything inside the
// group sits behind the bearer-token gate.
func NewRouter(db *mongo.Database, store ports.FileStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("training"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	animalRepo := mongodb.NewAnimalRepository(db)
	logRepo := mongodb.NewTrainingLogRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret)
	animalService := service.NewAnimalService(animalRepo, log)
	trainingService := service.NewTrainingService(userRepo, animalRepo, logRepo, log)
	adminService := service.NewAdminService(userRepo, animalRepo, logRepo)
	uploadService := service.NewUploadService(userRepo, animalRepo, logRepo, store, log)

	authHandler := handler.NewAuthHandler(authService)
	animalHandler := handler.NewAnimalHandler(animalService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	adminHandler := handler.NewAdminHandler(adminService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// --- Public routes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", readinessHandler.Readiness)

	e.POST("/api/user", authHandler.Register)
	e.POST("/api/user/login", authHandler.Login)
	e.POST("/api/user/verify", authHandler.Verify)

	// --- Protected routes ---
	protected := e.Group("/api", middleware.Auth(jwtSecret))
	protected.POST("/animal", animalHandler.Create)
	protected.POST("/training", trainingHandler.Create)
	protected.GET("/admin/users", adminHandler.ListUsers)
	protected.GET("/admin/animals", adminHandler.ListAnimals)
	protected.GET("/admin/training", adminHandler.ListTrainingLogs)
	protected.POST("/file/upload", uploadHandler.Upload)

	return e
}
