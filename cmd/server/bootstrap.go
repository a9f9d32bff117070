package main

import (
	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/handlers"
	"github.com/creativeimage/wedding-portal/backend/internal/models"
	"github.com/creativeimage/wedding-portal/backend/internal/services"
	"github.com/creativeimage/wedding-portal/backend/internal/utils"
	"github.com/creativeimage/wedding-portal/backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg    *config.Config
	mailer services.Mailer

	authHandler         *handlers.AuthHandler
	projectHandler      *handlers.ProjectHandler
	modificationHandler *handlers.ModificationHandler
	notificationHandler *handlers.NotificationHandler
	userHandler         *handlers.UserHandler
	systemLogHandler    *handlers.SystemLogHandler
	healthHandler       *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, mailer,
// handlers, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	services.InitSystemLogger(models.GetDB())
	services.StartLogCleanupScheduler(models.GetDB(), cfg.Log.RetentionDays)

	mailer := services.NewSMTPMailer(&cfg.SMTP)

	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg, mailer)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		cfg:                 cfg,
		mailer:              mailer,
		authHandler:         authHandler,
		projectHandler:      handlers.NewProjectHandler(models.GetDB()),
		modificationHandler: handlers.NewModificationHandler(models.GetDB(), cfg, mailer),
		notificationHandler: handlers.NewNotificationHandler(models.GetDB(), cfg, mailer),
		userHandler:         handlers.NewUserHandler(models.GetDB(), cfg, mailer),
		systemLogHandler:    handlers.NewSystemLogHandler(models.GetDB()),
		healthHandler:       handlers.NewHealthHandler(),
	}
}

// shutdown gracefully stops background schedulers.
func (s *appServices) shutdown() {
	services.StopLogCleanupScheduler()
	logger.Info().Msg("All schedulers stopped")
}
