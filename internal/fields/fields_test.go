package fields

import (
	"testing"
	"time"

	"github.com/creativeimage/wedding-portal/backend/internal/models"
)

func TestLookup_AllRegisteredKeys(t *testing.T) {
	keys := []string{
		EventDate, TitleVideo, City, CivilUnionDetails, Prep,
		Church, Session, Restaurant, DetailsExtra, EditingPreferences,
	}

	for _, key := range keys {
		f, ok := Lookup(key)
		if !ok {
			t.Errorf("Lookup(%q) should succeed", key)
			continue
		}
		if f.Key != key {
			t.Errorf("Lookup(%q).Key = %q", key, f.Key)
		}
		if f.Label == "" {
			t.Errorf("field %q has no label", key)
		}
		if f.Column == "" {
			t.Errorf("field %q has no column", key)
		}
	}
}

func TestLookup_UnknownKey(t *testing.T) {
	for _, key := range []string{"", "password", "status", "EventDate", "event_date"} {
		if _, ok := Lookup(key); ok {
			t.Errorf("Lookup(%q) should fail", key)
		}
	}
}

func TestAll_Count(t *testing.T) {
	if got := len(All()); got != 10 {
		t.Errorf("All() returned %d fields, expected 10", got)
	}
}

func TestTextField_GetParse(t *testing.T) {
	p := &models.Project{City: "Bucuresti"}

	f, _ := Lookup(City)
	if got := f.Get(p); got != "Bucuresti" {
		t.Errorf("Get() = %q, expected %q", got, "Bucuresti")
	}

	val, err := f.Parse("Cluj")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if val != "Cluj" {
		t.Errorf("Parse() = %v, expected pass-through string", val)
	}
}

func TestDateField_GetParse(t *testing.T) {
	p := &models.Project{}
	f, _ := Lookup(EventDate)

	if got := f.Get(p); got != "" {
		t.Errorf("Get() on zero date = %q, expected empty", got)
	}

	val, err := f.Parse("2025-09-15")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	d, ok := val.(time.Time)
	if !ok {
		t.Fatalf("Parse() returned %T, expected time.Time", val)
	}
	if d.Year() != 2025 || d.Month() != time.September || d.Day() != 15 {
		t.Errorf("parsed date = %v", d)
	}

	p.EventDate = d
	if got := f.Get(p); got != "2025-09-15T00:00:00Z" {
		t.Errorf("Get() = %q, expected RFC3339 form", got)
	}
}

func TestDateField_ParseInvalid(t *testing.T) {
	f, _ := Lookup(EventDate)

	for _, raw := range []string{"", "not-a-date", "15/09/2025", "2025-13-45"} {
		if _, err := f.Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
	}
}

func TestParseDate_Formats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"rfc3339", "2025-09-15T10:30:00Z", true},
		{"rfc3339 with offset", "2025-09-15T10:30:00+03:00", true},
		{"plain date", "2025-09-15", true},
		{"empty", "", false},
		{"garbage", "next friday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if tt.ok && err != nil {
				t.Errorf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("ParseDate(%q) should fail", tt.input)
			}
		})
	}
}

func TestBoolRoundTrip(t *testing.T) {
	for _, b := range []bool{true, false} {
		parsed, err := ParseBool(FormatBool(b))
		if err != nil {
			t.Fatalf("ParseBool(FormatBool(%v)) error = %v", b, err)
		}
		if parsed != b {
			t.Errorf("round trip of %v = %v", b, parsed)
		}
	}

	if _, err := ParseBool("yes"); err == nil {
		t.Error("ParseBool(\"yes\") should fail")
	}
}

func TestLabel_Fallback(t *testing.T) {
	if got := Label(City); got != "Orașul" {
		t.Errorf("Label(city) = %q", got)
	}
	if got := Label("legacyField"); got != "legacyField" {
		t.Errorf("Label should fall back to the key, got %q", got)
	}
}
