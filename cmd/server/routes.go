package main

import (
	"github.com/gin-gonic/gin"

	"github.com/creativeimage/wedding-portal/backend/internal/middleware"
	"github.com/creativeimage/wedding-portal/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the public login route
	loginLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginLimiter.Middleware(), svc.authHandler.Login)
		}

		// Protected routes (admin and client)
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)

			// Projects (reads scoped by ownership in the service layer)
			protected.GET("/projects", svc.projectHandler.List)
			protected.GET("/projects/:id", svc.projectHandler.GetByID)

			// Event field changes and their history
			protected.PATCH("/projects/:id/fields", svc.modificationHandler.SubmitFieldUpdate)
			protected.GET("/projects/:id/modifications", svc.modificationHandler.ListByProject)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			// Projects (write operations)
			admin.POST("/projects", svc.projectHandler.Create)
			admin.PATCH("/projects/:id", svc.projectHandler.Update)
			admin.POST("/projects/:id/actions", svc.projectHandler.Action)
			admin.DELETE("/projects/:id", svc.projectHandler.Delete)

			// Modification approval workflow
			admin.PATCH("/modifications/:id", svc.modificationHandler.Resolve)
			admin.POST("/modifications/cleanup", svc.modificationHandler.Cleanup)

			// Client notifications
			admin.POST("/projects/:id/notify-client", svc.notificationHandler.NotifyClient)
			admin.POST("/projects/:id/clear-notifications", svc.notificationHandler.ClearNotifications)

			// Client accounts
			admin.POST("/users", svc.userHandler.CreateClient)
			admin.POST("/users/:id/resend-welcome", svc.userHandler.ResendWelcome)

			// Operation log
			admin.GET("/system-logs", svc.systemLogHandler.List)
		}
	}
}
