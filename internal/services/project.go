package services

import (
	"errors"

	"github.com/creativeimage/wedding-portal/backend/internal/fields"
	"github.com/creativeimage/wedding-portal/backend/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Page            int    `form:"page" binding:"min=0"`
	PageSize        int    `form:"page_size" binding:"min=0,max=100"`
	Name            string `form:"name"`
	Status          string `form:"status"`
	IncludeArchived bool   `form:"include_archived"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Name      string `json:"name" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=NUNTA BOTEZ"`
	EventDate string `json:"event_date" binding:"required"`
	City      string `json:"city"`
	TitleVideo string `json:"title_video"`
}

type UpdateProjectRequest struct {
	Status     string `json:"status" binding:"omitempty,oneof=Planning Filming Editing Completed"`
	EditStatus string `json:"edit_status"`
	Notes      *string `json:"notes"`
}

// List returns paginated projects for the admin dashboard. Archived projects
// are hidden unless requested.
func (s *ProjectService) List(req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	var projects []models.Project
	var total int64

	query := s.db.Model(&models.Project{}).Preload("User")

	if !req.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// ListForOwner returns the non-archived projects owned by a client.
func (s *ProjectService) ListForOwner(userID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID returns a project the actor may view.
func (s *ProjectService) GetByID(actor Actor, id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("User").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(&project) {
		return nil, ErrForbidden
	}
	return &project, nil
}

// Create creates a new project for a client.
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	var owner models.User
	if err := s.db.First(&owner, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	eventDate, err := fields.ParseDate(req.EventDate)
	if err != nil {
		return nil, ErrInvalidValue
	}

	project := models.Project{
		Name:       req.Name,
		UserID:     owner.ID,
		Type:       req.Type,
		Status:     models.StatusPlanning,
		EventDate:  eventDate,
		City:       req.City,
		TitleVideo: req.TitleVideo,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update applies admin-only project metadata changes. Event fields go through
// the modification workflow instead.
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.EditStatus != "" {
		updates["edit_status"] = req.EditStatus
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &project, nil
}

// SetArchived archives or unarchives a project.
func (s *ProjectService) SetArchived(id uint, archived bool) error {
	res := s.db.Model(&models.Project{}).Where("id = ?", id).Update("is_archived", archived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes a project and its ledger.
func (s *ProjectService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Modification{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Project{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
