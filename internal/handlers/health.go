package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/creativeimage/wedding-portal/backend/internal/models"
)

// HealthHandler reports subsystem status for uptime monitoring.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	var pendingCount int64
	models.GetDB().Model(&models.Modification{}).
		Where("status = ?", models.ModificationPending).
		Count(&pendingCount)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "wedding-portal",
		"components": gin.H{
			"database":              dbStatus,
			"pending_modifications": pendingCount,
		},
	})
}
