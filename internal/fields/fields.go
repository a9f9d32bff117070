// Package fields defines the closed set of project fields that clients and
// admins may edit through the modification workflow. Each field carries its
// semantic kind, display label and a parse/format pair, so nothing outside
// this package dispatches on raw field names.
package fields

import (
	"fmt"
	"time"

	"github.com/creativeimage/wedding-portal/backend/internal/models"
)

// Kind is a field's semantic type.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindBool
)

// Field keys
const (
	EventDate          = "eventDate"
	TitleVideo         = "titleVideo"
	City               = "city"
	CivilUnionDetails  = "civilUnionDetails"
	Prep               = "prep"
	Church             = "church"
	Session            = "session"
	Restaurant         = "restaurant"
	DetailsExtra       = "detailsExtra"
	EditingPreferences = "editingPreferences"
)

// Field describes one editable project field.
type Field struct {
	Key    string
	Label  string // display name used in client-facing emails
	Column string // gorm column name
	Kind   Kind
	get    func(*models.Project) string
}

// Get returns the project's current value formatted as a display string:
// ISO 8601 for dates, the raw string otherwise.
func (f Field) Get(p *models.Project) string { return f.get(p) }

// Parse converts a submitted raw value into the typed value stored on the
// project column. Text fields pass through; date fields are parsed strictly.
func (f Field) Parse(raw string) (interface{}, error) {
	switch f.Kind {
	case KindDate:
		return ParseDate(raw)
	case KindBool:
		return ParseBool(raw)
	default:
		return raw, nil
	}
}

var registry = []Field{
	{EventDate, "Data evenimentului", "event_date", KindDate,
		func(p *models.Project) string { return FormatDate(p.EventDate) }},
	{TitleVideo, "Titlul video", "title_video", KindText,
		func(p *models.Project) string { return p.TitleVideo }},
	{City, "Orașul", "city", KindText,
		func(p *models.Project) string { return p.City }},
	{CivilUnionDetails, "Detalii căsătorie civilă", "civil_union_details", KindText,
		func(p *models.Project) string { return p.CivilUnionDetails }},
	{Prep, "Pregătiri", "prep", KindText,
		func(p *models.Project) string { return p.Prep }},
	{Church, "Biserica", "church", KindText,
		func(p *models.Project) string { return p.Church }},
	{Session, "Sesiunea foto", "session", KindText,
		func(p *models.Project) string { return p.Session }},
	{Restaurant, "Restaurantul", "restaurant", KindText,
		func(p *models.Project) string { return p.Restaurant }},
	{DetailsExtra, "Detalii suplimentare", "details_extra", KindText,
		func(p *models.Project) string { return p.DetailsExtra }},
	{EditingPreferences, "Preferințe editare", "editing_preferences", KindText,
		func(p *models.Project) string { return p.EditingPreferences }},
}

// Lookup returns the field for the given key.
func Lookup(key string) (Field, bool) {
	for _, f := range registry {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// All returns the registered fields in declaration order.
func All() []Field {
	out := make([]Field, len(registry))
	copy(out, registry)
	return out
}

// Label returns the display name for a field key, falling back to the key
// itself for unregistered names found in legacy ledger rows.
func Label(key string) string {
	if f, ok := Lookup(key); ok {
		return f.Label
	}
	return key
}

// FormatDate renders a date value as an ISO 8601 string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date value: %q", raw)
}

// FormatBool renders a boolean as the display strings stored in the ledger.
// Kept for the legacy civil-same-day variant of the civil union field.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ParseBool parses the display form produced by FormatBool.
func ParseBool(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %q", raw)
}
