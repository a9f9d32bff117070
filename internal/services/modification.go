package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creativeimage/wedding-portal/backend/internal/config"
	"github.com/creativeimage/wedding-portal/backend/internal/fields"
	"github.com/creativeimage/wedding-portal/backend/internal/models"
	"github.com/creativeimage/wedding-portal/backend/pkg/logger"
	"gorm.io/gorm"
)

// ModificationService owns the field-modification workflow: classifying
// update requests, recording ledger entries, and resolving pending ones.
type ModificationService struct {
	db     *gorm.DB
	mailer Mailer
	portal *config.PortalConfig
}

func NewModificationService(db *gorm.DB, mailer Mailer, portal *config.PortalConfig) *ModificationService {
	return &ModificationService{db: db, mailer: mailer, portal: portal}
}

// Resolution actions
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

const pendingApprovalMessage = "Modificarea a fost trimisă pentru aprobare de către Videograf."

const cleanupNote = "System cleanup: this modification was auto-applied and incorrectly marked as pending."

// UpdateResult reports whether a submitted change took effect immediately.
type UpdateResult struct {
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
}

// SubmitFieldUpdate classifies and records a field change. Admin changes and
// editing preferences apply to the project immediately; client changes on any
// other field are queued as PENDING ledger entries awaiting approval.
func (s *ModificationService) SubmitFieldUpdate(actor Actor, projectID uint, fieldKey, value string) (*UpdateResult, error) {
	f, ok := fields.Lookup(fieldKey)
	if !ok {
		return nil, ErrInvalidField
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !actor.CanAccess(&project) {
		return nil, ErrForbidden
	}

	oldValue := f.Get(&project)
	now := time.Now()

	// Editing preferences are low-risk free text and auto-apply for any role.
	if actor.IsAdmin() || fieldKey == fields.EditingPreferences {
		typed, err := f.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}

		updates := map[string]interface{}{f.Column: typed}
		if actor.IsAdmin() {
			// The client hasn't been told about this change yet.
			updates["has_unsent_changes"] = true
		}

		entry := models.Modification{
			ProjectID:  project.ID,
			FieldName:  fieldKey,
			OldValue:   oldValue,
			NewValue:   value,
			Status:     models.ModificationAutoApplied,
			CreatedBy:  actor.ID,
			ApprovedBy: &actor.ID,
			ApprovedAt: &now,
		}

		// Project mutation and its ledger entry commit as one unit.
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Project{}).Where("id = ?", project.ID).Updates(updates).Error; err != nil {
				return err
			}
			return tx.Create(&entry).Error
		})
		if err != nil {
			return nil, err
		}

		return &UpdateResult{Applied: true}, nil
	}

	// Client change on a moderated field: record only, never touch the project.
	entry := models.Modification{
		ProjectID: project.ID,
		FieldName: fieldKey,
		OldValue:  oldValue,
		NewValue:  value,
		Status:    models.ModificationPending,
		CreatedBy: actor.ID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	s.notifyAdminOfPending(&project, actor)

	return &UpdateResult{Applied: false, Message: pendingApprovalMessage}, nil
}

// notifyAdminOfPending emails the admin about the first pending submission of
// a batch. The flag is only set after a successful send, so a failed send is
// retried by the next submission.
func (s *ModificationService) notifyAdminOfPending(project *models.Project, actor Actor) {
	if project.AdminNotifiedOfChanges || s.portal.AdminEmail == "" {
		return
	}

	var proposer models.User
	if err := s.db.First(&proposer, actor.ID).Error; err != nil {
		logger.Warn().Err(err).Uint("user_id", actor.ID).Msg("proposer lookup failed")
		return
	}

	subject := fmt.Sprintf("Modificări în așteptare pentru proiectul: %s", project.Name)
	body := buildPendingChangesBody(proposer.DisplayName(), project, s.portal)

	if err := s.mailer.Send(s.portal.AdminEmail, subject, body); err != nil {
		logger.Warn().Err(err).Uint("project_id", project.ID).Msg("admin pending-changes notice not sent")
		return
	}

	if err := s.db.Model(&models.Project{}).
		Where("id = ? AND admin_notified_of_changes = ?", project.ID, false).
		Update("admin_notified_of_changes", true).Error; err != nil {
		logger.Error().Err(err).Uint("project_id", project.ID).Msg("failed to mark admin notified")
	}
}

// Resolve transitions a PENDING modification to APPROVED or REJECTED. The
// transition is a conditional update on status, so a concurrent resolution of
// the same entry loses with ErrInvalidState and never double-applies.
func (s *ModificationService) Resolve(actor Actor, modificationID uint, action, notes string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if action != ActionApprove && action != ActionReject {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidValue, action)
	}

	var mod models.Modification
	if err := s.db.Preload("Project").First(&mod, modificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if mod.Status != models.ModificationPending {
		return ErrInvalidState
	}

	now := time.Now()
	resolution := map[string]interface{}{
		"approved_by": actor.ID,
		"approved_at": now,
		"notes":       notes,
	}

	if action == ActionApprove {
		f, ok := fields.Lookup(mod.FieldName)
		if !ok {
			return ErrInvalidField
		}
		typed, err := f.Parse(mod.NewValue)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		resolution["status"] = models.ModificationApproved

		err = s.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.Modification{}).
				Where("id = ? AND status = ?", mod.ID, models.ModificationPending).
				Updates(resolution)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInvalidState
			}
			return tx.Model(&models.Project{}).
				Where("id = ?", mod.ProjectID).
				Update(f.Column, typed).Error
		})
		if err != nil {
			return err
		}
	} else {
		resolution["status"] = models.ModificationRejected
		res := s.db.Model(&models.Modification{}).
			Where("id = ? AND status = ?", mod.ID, models.ModificationPending).
			Updates(resolution)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}

		if strings.TrimSpace(notes) != "" {
			s.sendRejectionNotice(&mod, notes)
		}
	}

	return s.rearmAdminGate(mod.ProjectID)
}

// rearmAdminGate clears the admin-notified flag once no PENDING entries
// remain, so the next pending batch triggers a fresh notification.
func (s *ModificationService) rearmAdminGate(projectID uint) error {
	var remaining int64
	if err := s.db.Model(&models.Modification{}).
		Where("project_id = ? AND status = ?", projectID, models.ModificationPending).
		Count(&remaining).Error; err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}
	return s.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("admin_notified_of_changes", false).Error
}

func (s *ModificationService) sendRejectionNotice(mod *models.Modification, reason string) {
	if mod.Project == nil {
		return
	}

	var owner models.User
	if err := s.db.First(&owner, mod.Project.UserID).Error; err != nil || owner.Email == "" {
		return
	}

	subject := fmt.Sprintf("Modificare respinsă pentru proiectul: %s", mod.Project.Name)
	body := buildRejectionBody(&owner, mod, reason, s.portal)

	if err := s.mailer.Send(owner.Email, subject, body); err != nil {
		logger.Warn().Err(err).Uint("modification_id", mod.ID).Msg("rejection notice not sent")
	}
}

// ListByProject returns the project's full change history, newest first.
func (s *ModificationService) ListByProject(actor Actor, projectID uint) ([]models.Modification, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(&project) {
		return nil, ErrForbidden
	}

	var mods []models.Modification
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&mods).Error; err != nil {
		return nil, err
	}
	return mods, nil
}

// CleanupStalePendingPreferences rejects editing-preference entries stuck in
// PENDING. That state should be impossible (preferences always auto-apply)
// but can exist from legacy data; re-running finds nothing once cleaned.
func (s *ModificationService) CleanupStalePendingPreferences(actor Actor) (int64, error) {
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}

	res := s.db.Model(&models.Modification{}).
		Where("field_name = ? AND status = ?", fields.EditingPreferences, models.ModificationPending).
		Updates(map[string]interface{}{
			"status": models.ModificationRejected,
			"notes":  cleanupNote,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
