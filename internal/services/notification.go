package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationService sends the outbound change digest: a single email
// summarizing auto-applied changes the client hasn't been told about yet.
type NotificationService struct {
	db     *gorm.DB
	mailer Mailer
	portal *config.PortalConfig
}

func NewNotificationService(db *gorm.DB, mailer Mailer, portal *config.PortalConfig) *NotificationService {
	return &NotificationService{db: db, mailer: mailer, portal: portal}
}

// SendClientDigest emails the project owner a summary of all AUTO_APPLIED
// changes since the last notification, then clears the unsent-changes flag.
// The flag is only cleared after a successful send, so a failed delivery can
// be retried.
func (s *NotificationService) SendClientDigest(actor Actor, projectID uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	var project models.Project
	if err := s.db.Preload("User").First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if project.User == nil || project.User.Email == "" {
		return ErrMissingEmail
	}
	if !project.HasUnsentChanges {
		return ErrNoChangesToNotify
	}

	since := time.Unix(0, 0)
	if project.LastClientNotificationDate != nil {
		since = *project.LastClientNotificationDate
	}

	var changes []models.Modification
	if err := s.db.Where("project_id = ? AND status = ? AND created_at >= ?",
		project.ID, models.ModificationAutoApplied, since).
		Order("created_at DESC").
		Find(&changes).Error; err != nil {
		return err
	}

	subject := fmt.Sprintf("Actualizare proiect: %s", project.Name)
	body := buildDigestBody(&project, changes, s.portal)

	if err := s.mailer.Send(project.User.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send client digest: %w", err)
	}

	now := time.Now()
	return s.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"has_unsent_changes":            false,
			"last_client_notification_date": now,
		}).Error
}

// ClearClientFlag dismisses the unsent-changes flag without emailing anyone.
func (s *NotificationService) ClearClientFlag(actor Actor, projectID uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Update("has_unsent_changes", false).Error
}
