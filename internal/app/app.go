package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"campus_backend/internal/auth"
	"campus_backend/internal/config"
	"campus_backend/internal/database"
	"campus_backend/internal/email"
	"campus_backend/internal/handlers"
	"campus_backend/internal/logger"
	"campus_backend/internal/middleware"
	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
	"campus_backend/internal/routes"
	"campus_backend/internal/services"
	"campus_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	emailProvider := email.NewProvider(cfg)

	eventRepo := repositories.NewEventRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	studentRepo := repositories.NewStudentRepository(gormDB)
	prAdminRepo := repositories.NewPrAdminRepository(gormDB)
	announcementRepo := repositories.NewAnnouncementRepository(gormDB)
	registrationRepo := repositories.NewRegistrationRepository(gormDB)

	eventService := services.NewEventService(eventRepo, notificationRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(studentRepo, prAdminRepo)
	adminService := services.NewAdminService(studentRepo, prAdminRepo, notificationRepo, emailProvider)
	announcementService := services.NewAnnouncementService(announcementRepo)
	registrationService := services.NewRegistrationService(registrationRepo)

	return &services.ServiceContainer{
		EventService:        eventService,
		NotificationService: notificationService,
		AuthService:         authService,
		AdminService:        adminService,
		AnnouncementService: announcementService,
		RegistrationService: registrationService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		EventHandler:        handlers.NewEventHandler(baseHandler, container.EventService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, container.AdminService),
		AnnouncementHandler: handlers.NewAnnouncementHandler(baseHandler, container.AnnouncementService),
		RegistrationHandler: handlers.NewRegistrationHandler(baseHandler, container.RegistrationService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials are not configured. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var admin models.PrAdmin
	result := tx.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.PrAdmin{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.RoleMainAdmin,
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)

	return tx.Commit().Error
}
