package services

import (
	"errors"
	"testing"
	"time"

	"github.com/creativeimage/wedding-portal/backend/internal/models"
)

func TestProjectService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	admin, client, _ := seedProject(t, db)
	svc := NewProjectService(db)

	created, err := svc.Create(&CreateProjectRequest{
		Name:      "Botez Sofia",
		UserID:    client.ID,
		Type:      "BOTEZ",
		EventDate: "2026-11-08",
		City:      "Pitesti",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.StatusPlanning {
		t.Errorf("status = %q, want %q", created.Status, models.StatusPlanning)
	}
	want := time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC)
	if !created.EventDate.Equal(want) {
		t.Errorf("event date = %v, want %v", created.EventDate, want)
	}

	got, err := svc.GetByID(asActor(admin), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Botez Sofia" {
		t.Errorf("name = %q", got.Name)
	}
	if got.User == nil || got.User.ID != client.ID {
		t.Error("owner should be preloaded")
	}
}

func TestProjectService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	_, client, _ := seedProject(t, db)
	svc := NewProjectService(db)

	if _, err := svc.Create(&CreateProjectRequest{
		Name: "X", UserID: 9999, Type: "NUNTA", EventDate: "2026-11-08",
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown owner err = %v, want ErrNotFound", err)
	}

	if _, err := svc.Create(&CreateProjectRequest{
		Name: "X", UserID: client.ID, Type: "NUNTA", EventDate: "08.11.2026",
	}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("bad date err = %v, want ErrInvalidValue", err)
	}
}

func TestProjectService_GetByIDOwnership(t *testing.T) {
	db := newTestDB(t)
	_, client, project := seedProject(t, db)
	other := models.User{Email: "alt.cuplu@example.com", Role: models.RoleClient, IsActive: true}
	db.Create(&other)
	svc := NewProjectService(db)

	if _, err := svc.GetByID(asActor(client), project.ID); err != nil {
		t.Errorf("owner read: %v", err)
	}
	if _, err := svc.GetByID(asActor(other), project.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign client err = %v, want ErrForbidden", err)
	}
	if _, err := svc.GetByID(asActor(client), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing project err = %v, want ErrNotFound", err)
	}
}

func TestProjectService_ListHidesArchived(t *testing.T) {
	db := newTestDB(t)
	_, client, project := seedProject(t, db)
	svc := NewProjectService(db)

	archived := models.Project{
		Name:       "Nunta veche",
		UserID:     client.ID,
		Type:       "NUNTA",
		IsArchived: true,
	}
	if err := db.Create(&archived).Error; err != nil {
		t.Fatalf("seed archived: %v", err)
	}

	resp, err := svc.List(&ProjectListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("total = %d items = %d, want 1/1", resp.Total, len(resp.Items))
	}
	if resp.Items[0].ID != project.ID {
		t.Error("only the active project should be listed")
	}

	resp, err = svc.List(&ProjectListRequest{IncludeArchived: true})
	if err != nil {
		t.Fatalf("List archived: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total with archived = %d, want 2", resp.Total)
	}

	owned, err := svc.ListForOwner(client.ID)
	if err != nil {
		t.Fatalf("ListForOwner: %v", err)
	}
	if len(owned) != 1 {
		t.Errorf("owner list = %d, want 1 (archived hidden)", len(owned))
	}
}

func TestProjectService_UpdateMetadata(t *testing.T) {
	db := newTestDB(t)
	_, _, project := seedProject(t, db)
	svc := NewProjectService(db)

	notes := "Drona confirmată pentru ceremonie"
	updated, err := svc.Update(project.ID, &UpdateProjectRequest{
		Status:     models.StatusFilming,
		EditStatus: "In Progress",
		Notes:      &notes,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.StatusFilming {
		t.Errorf("status = %q, want %q", updated.Status, models.StatusFilming)
	}

	got := reloadProject(t, db, project.ID)
	if got.Notes != notes {
		t.Errorf("notes = %q", got.Notes)
	}
	// Event fields go through the modification workflow, never this path.
	if got.City != "Bucuresti" {
		t.Errorf("city = %q, metadata update must not touch event fields", got.City)
	}

	if _, err := svc.Update(9999, &UpdateProjectRequest{Status: models.StatusFilming}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing project err = %v, want ErrNotFound", err)
	}
}

func TestProjectService_ArchiveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	_, _, project := seedProject(t, db)
	svc := NewProjectService(db)

	if err := svc.SetArchived(project.ID, true); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !reloadProject(t, db, project.ID).IsArchived {
		t.Error("project should be archived")
	}

	if err := svc.SetArchived(project.ID, false); err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	if reloadProject(t, db, project.ID).IsArchived {
		t.Error("project should be unarchived")
	}

	if err := svc.SetArchived(9999, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing project err = %v, want ErrNotFound", err)
	}
}

func TestProjectService_DeleteRemovesLedger(t *testing.T) {
	db := newTestDB(t)
	_, client, project := seedProject(t, db)
	modSvc := NewModificationService(db, &fakeMailer{}, testPortal())
	svc := NewProjectService(db)

	if _, err := modSvc.SubmitFieldUpdate(asActor(client), project.ID, "city", "Cluj"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.Delete(project.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var mods int64
	db.Model(&models.Modification{}).Where("project_id = ?", project.ID).Count(&mods)
	if mods != 0 {
		t.Errorf("ledger entries remaining = %d, want 0", mods)
	}

	if err := svc.Delete(project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}
