package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/middleware"
	"github.com/creativeimage/wedding-portal/backend/internal/services"
	"github.com/creativeimage/wedding-portal/backend/pkg/response"
)

type ModificationHandler struct {
	modService *services.ModificationService
}

func NewModificationHandler(db *gorm.DB, cfg *config.Config, mailer services.Mailer) *ModificationHandler {
	return &ModificationHandler{
		modService: services.NewModificationService(db, mailer, &cfg.Portal),
	}
}

type fieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SubmitFieldUpdate records a change to an editable event field. Depending
// on the caller's role and the field, it either applies immediately or is
// queued for approval.
// PATCH /api/projects/:id/fields
func (h *ModificationHandler) SubmitFieldUpdate(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.modService.SubmitFieldUpdate(actorFrom(c), id, req.Field, req.Value)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// ListByProject returns a project's modification history, newest first.
// GET /api/projects/:id/modifications
func (h *ModificationHandler) ListByProject(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	mods, err := h.modService.ListByProject(actorFrom(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, mods)
}

type resolveRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Notes  string `json:"notes"`
}

// Resolve approves or rejects a pending modification.
// PATCH /api/modifications/:id
func (h *ModificationHandler) Resolve(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid modification id")
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.modService.Resolve(actorFrom(c), id, req.Action, req.Notes); err != nil {
		serviceError(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	services.LogInfo("modification", req.Action, "modification "+c.Param("id")+" "+req.Action+"d",
		&userID, c.ClientIP(), c.Request.UserAgent(), nil)

	response.Success(c, gin.H{"message": "modification " + req.Action + "d"})
}

// Cleanup bulk-rejects stale pending editing-preference entries left behind
// by earlier releases that queued preferences instead of applying them.
// POST /api/modifications/cleanup
func (h *ModificationHandler) Cleanup(c *gin.Context) {
	count, err := h.modService.CleanupStalePendingPreferences(actorFrom(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{"cleaned": count})
}
