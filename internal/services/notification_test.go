package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/creativeimage/wedding-portal/backend/internal/fields"
	"github.com/creativeimage/wedding-portal/backend/internal/models"
)

func TestSendClientDigest_SendsAndClearsFlags(t *testing.T) {
	db := newTestDB(t)
	admin, client, project := seedProject(t, db)
	mailer := &fakeMailer{}
	modSvc := NewModificationService(db, mailer, testPortal())
	notifSvc := NewNotificationService(db, mailer, testPortal())

	if _, err := modSvc.SubmitFieldUpdate(asActor(admin), project.ID, fields.City, "Sinaia"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := modSvc.SubmitFieldUpdate(asActor(admin), project.ID, fields.TitleVideo, "Ana & Mihai — Best Of"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := notifSvc.SendClientDigest(asActor(admin), project.ID); err != nil {
		t.Fatalf("SendClientDigest: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("digest should be one email, got %d", len(mailer.sent))
	}
	digest := mailer.sent[0]
	if digest.to != client.Email {
		t.Errorf("digest sent to %q, want %q", digest.to, client.Email)
	}
	if !strings.Contains(digest.body, "Sinaia") || !strings.Contains(digest.body, "Best Of") {
		t.Error("digest body should list both applied changes")
	}

	got := reloadProject(t, db, project.ID)
	if got.HasUnsentChanges {
		t.Error("unsent-changes flag should clear after a successful digest")
	}
	if got.LastClientNotificationDate == nil {
		t.Error("last notification date should be stamped")
	}
}

func TestSendClientDigest_OnlyChangesSinceLastDigest(t *testing.T) {
	db := newTestDB(t)
	admin, _, project := seedProject(t, db)
	mailer := &fakeMailer{}
	notifSvc := NewNotificationService(db, mailer, testPortal())

	lastWeek := time.Now().Add(-7 * 24 * time.Hour)
	old := models.Modification{
		ProjectID: project.ID,
		FieldName: fields.City,
		NewValue:  "Sibiu",
		Status:    models.ModificationAutoApplied,
		CreatedBy: admin.ID,
		CreatedAt: lastWeek.Add(-24 * time.Hour),
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed old change: %v", err)
	}
	recent := models.Modification{
		ProjectID: project.ID,
		FieldName: fields.Restaurant,
		NewValue:  "Casa Vlăsia",
		Status:    models.ModificationAutoApplied,
		CreatedBy: admin.ID,
	}
	if err := db.Create(&recent).Error; err != nil {
		t.Fatalf("seed recent change: %v", err)
	}
	if err := db.Model(&models.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
		"has_unsent_changes":            true,
		"last_client_notification_date": lastWeek,
	}).Error; err != nil {
		t.Fatalf("stamp project: %v", err)
	}

	if err := notifSvc.SendClientDigest(asActor(admin), project.ID); err != nil {
		t.Fatalf("SendClientDigest: %v", err)
	}

	body := mailer.sent[0].body
	if !strings.Contains(body, "Casa Vlăsia") {
		t.Error("digest should include the change after the last digest")
	}
	if strings.Contains(body, "Sibiu") {
		t.Error("digest should not repeat changes already notified")
	}
}

func TestSendClientDigest_Guards(t *testing.T) {
	db := newTestDB(t)
	admin, client, project := seedProject(t, db)
	notifSvc := NewNotificationService(db, &fakeMailer{}, testPortal())

	if err := notifSvc.SendClientDigest(asActor(client), project.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("client digest err = %v, want ErrForbidden", err)
	}
	if err := notifSvc.SendClientDigest(asActor(admin), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing project err = %v, want ErrNotFound", err)
	}
	// Flag not set: nothing to report.
	if err := notifSvc.SendClientDigest(asActor(admin), project.ID); !errors.Is(err, ErrNoChangesToNotify) {
		t.Errorf("no-changes err = %v, want ErrNoChangesToNotify", err)
	}
}

func TestSendClientDigest_OwnerWithoutEmail(t *testing.T) {
	db := newTestDB(t)
	admin, client, project := seedProject(t, db)
	notifSvc := NewNotificationService(db, &fakeMailer{}, testPortal())

	db.Model(&models.User{}).Where("id = ?", client.ID).Update("email", "")
	db.Model(&models.Project{}).Where("id = ?", project.ID).Update("has_unsent_changes", true)

	if err := notifSvc.SendClientDigest(asActor(admin), project.ID); !errors.Is(err, ErrMissingEmail) {
		t.Errorf("err = %v, want ErrMissingEmail", err)
	}
}

func TestSendClientDigest_FailedSendKeepsFlag(t *testing.T) {
	db := newTestDB(t)
	admin, _, project := seedProject(t, db)
	mailer := &fakeMailer{fail: true}
	modSvc := NewModificationService(db, mailer, testPortal())
	notifSvc := NewNotificationService(db, mailer, testPortal())

	if _, err := modSvc.SubmitFieldUpdate(asActor(admin), project.ID, fields.City, "Sinaia"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := notifSvc.SendClientDigest(asActor(admin), project.ID); err == nil {
		t.Fatal("digest should fail when the mailer fails")
	}

	got := reloadProject(t, db, project.ID)
	if !got.HasUnsentChanges {
		t.Error("flag must survive a failed send so the digest can be retried")
	}
	if got.LastClientNotificationDate != nil {
		t.Error("notification date must not be stamped on a failed send")
	}

	// Retry once the relay is back.
	mailer.fail = false
	if err := notifSvc.SendClientDigest(asActor(admin), project.ID); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if reloadProject(t, db, project.ID).HasUnsentChanges {
		t.Error("flag should clear after the successful retry")
	}
}

func TestClearClientFlag(t *testing.T) {
	db := newTestDB(t)
	admin, client, project := seedProject(t, db)
	mailer := &fakeMailer{}
	notifSvc := NewNotificationService(db, mailer, testPortal())

	db.Model(&models.Project{}).Where("id = ?", project.ID).Update("has_unsent_changes", true)

	if err := notifSvc.ClearClientFlag(asActor(client), project.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("client clear err = %v, want ErrForbidden", err)
	}
	if err := notifSvc.ClearClientFlag(asActor(admin), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing project err = %v, want ErrNotFound", err)
	}

	if err := notifSvc.ClearClientFlag(asActor(admin), project.ID); err != nil {
		t.Fatalf("ClearClientFlag: %v", err)
	}
	if reloadProject(t, db, project.ID).HasUnsentChanges {
		t.Error("flag should be cleared")
	}
	if len(mailer.sent) != 0 {
		t.Errorf("clearing the flag must not email anyone, sent %d", len(mailer.sent))
	}
}
