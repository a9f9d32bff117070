package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/services"
	"github.com/creativeimage/wedding-portal/backend/pkg/response"
)

type NotificationHandler struct {
	notifService *services.NotificationService
}

func NewNotificationHandler(db *gorm.DB, cfg *config.Config, mailer services.Mailer) *NotificationHandler {
	return &NotificationHandler{
		notifService: services.NewNotificationService(db, mailer, &cfg.Portal),
	}
}

// NotifyClient emails the project owner a digest of auto-applied changes
// accumulated since the last digest.
// POST /api/projects/:id/notify-client
func (h *NotificationHandler) NotifyClient(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.notifService.SendClientDigest(actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "client notified"})
}

// ClearNotifications drops the unsent-changes flag without emailing.
// POST /api/projects/:id/clear-notifications
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.notifService.ClearClientFlag(actorFrom(c), id); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "notification flag cleared"})
}
