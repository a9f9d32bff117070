package models

import (
	"time"
)

// Modification statuses. PENDING is the only non-terminal status: entries
// transition PENDING → APPROVED or PENDING → REJECTED exactly once, and
// AUTO_APPLIED entries are created already resolved.
const (
	ModificationPending     = "PENDING"
	ModificationApproved    = "APPROVED"
	ModificationRejected    = "REJECTED"
	ModificationAutoApplied = "AUTO_APPLIED"
)

// Modification is one ledger entry: a proposed or applied change to a single
// project field. The ledger is append-only; entries are resolved, never deleted.
type Modification struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ProjectID  uint       `gorm:"index;not null" json:"project_id"`
	Project    *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	FieldName  string     `gorm:"size:100;index;not null" json:"field_name"`
	OldValue   string     `gorm:"type:text" json:"old_value"`
	NewValue   string     `gorm:"type:text" json:"new_value"`
	Status     string     `gorm:"size:20;index;default:PENDING" json:"status"`
	CreatedBy  uint       `json:"created_by"`
	ApprovedBy *uint      `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
	Notes      string     `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}

func (Modification) TableName() string { return "project_modifications" }

// IsTerminal reports whether the entry has reached a final status.
func (m *Modification) IsTerminal() bool {
	return m.Status != ModificationPending
}
