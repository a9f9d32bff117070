package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/services"
	"github.com/creativeimage/wedding-portal/backend/pkg/response"
)

type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(db *gorm.DB, cfg *config.Config, mailer services.Mailer) *UserHandler {
	return &UserHandler{
		authService: services.NewAuthService(db, &cfg.JWT, mailer, &cfg.Portal),
	}
}

// CreateClient registers a client account and emails a welcome password.
// POST /api/users
func (h *UserHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.CreateClient(&req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, user)
}

// ResendWelcome re-sends the welcome email with a fresh password.
// POST /api/users/:id/resend-welcome
func (h *UserHandler) ResendWelcome(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.authService.ResendWelcome(id); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "welcome email sent"})
}
