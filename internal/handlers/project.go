package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/creativeimage/wedding-portal/backend/internal/middleware"
	"github.com/creativeimage/wedding-portal/backend/internal/services"
	"github.com/creativeimage/wedding-portal/backend/pkg/response"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
	}
}

// List returns projects. Admins get the paginated dashboard view; clients
// get their own non-archived projects.
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	actor := actorFrom(c)
	if !actor.IsAdmin() {
		projects, err := h.projectService.ListForOwner(actor.ID)
		if err != nil {
			response.ServerError(c, err.Error())
			return
		}
		response.Success(c, projects)
		return
	}

	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.projectService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// GetByID returns a project by ID, subject to ownership.
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.projectService.GetByID(actorFrom(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, project)
}

// Create creates a new project for a client.
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, project)
}

// Update updates workflow status and notes.
// PATCH /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, project)
}

type projectActionRequest struct {
	Action string `json:"action" binding:"required,oneof=archive unarchive"`
}

// Action archives or unarchives a project.
// POST /api/projects/:id/actions
func (h *ProjectHandler) Action(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req projectActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.projectService.SetArchived(id, req.Action == "archive"); err != nil {
		serviceError(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	services.LogInfo("project", req.Action, "project "+c.Param("id")+" "+req.Action+"d",
		&userID, c.ClientIP(), c.Request.UserAgent(), nil)

	response.Success(c, gin.H{"message": "project " + req.Action + "d"})
}

// Delete removes a project and its modification history.
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "project deleted successfully"})
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	return uint(id), err
}
