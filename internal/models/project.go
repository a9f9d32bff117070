package models

import (
	"time"

	"gorm.io/gorm"
)

// Project lifecycle statuses
const (
	StatusPlanning  = "Planning"
	StatusFilming   = "Filming"
	StatusEditing   = "Editing"
	StatusCompleted = "Completed"
)

// Project types
const (
	TypeNunta = "NUNTA"
	TypeBotez = "BOTEZ"
)

// Project represents a wedding video project owned by a client.
type Project struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	User       *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type       string `gorm:"size:10" json:"type"`                        // NUNTA, BOTEZ
	Status     string `gorm:"size:50;default:Planning" json:"status"`     // Planning, Filming, Editing, Completed
	EditStatus string `gorm:"size:50;default:Pending" json:"edit_status"` // Pending, In Progress, Review, Completed
	Notes      string `gorm:"type:text" json:"notes"`
	IsArchived bool   `gorm:"default:false" json:"is_archived"`

	// Event details, editable through the field-modification workflow
	EventDate          time.Time `json:"event_date"`
	TitleVideo         string    `gorm:"size:255" json:"title_video"`
	City               string    `gorm:"size:100" json:"city"`
	CivilUnionDetails  string    `gorm:"type:text" json:"civil_union_details"`
	Prep               string    `gorm:"type:text" json:"prep"`
	Church             string    `gorm:"type:text" json:"church"`
	Session            string    `gorm:"type:text" json:"session"`
	Restaurant         string    `gorm:"type:text" json:"restaurant"`
	DetailsExtra       string    `gorm:"type:text" json:"details_extra"`
	EditingPreferences string    `gorm:"type:text" json:"editing_preferences"`

	// Notification bookkeeping. AdminNotifiedOfChanges is true iff an email
	// went out for the current unresolved batch of pending modifications.
	AdminNotifiedOfChanges     bool       `gorm:"default:false" json:"admin_notified_of_changes"`
	HasUnsentChanges           bool       `gorm:"default:false" json:"has_unsent_changes"`
	LastClientNotificationDate *time.Time `json:"last_client_notification_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }
