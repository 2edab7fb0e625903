package sqlite_test

import (
	"context"
	"testing"

	"github.com/awtad/website/internal/models"
)

// The migrations seed a default set of sectors and services, so these tests
// assert against behavior rather than exact row counts.

func TestSectorReads(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	sectors, err := repo.ListSectors(ctx)
	if err != nil {
		t.Fatalf("ListSectors error: %v", err)
	}
	if len(sectors) == 0 {
		t.Fatalf("expected seeded sectors")
	}
	for i := 1; i < len(sectors); i++ {
		if sectors[i-1].SortOrder > sectors[i].SortOrder {
			t.Fatalf("sectors not ordered by sort_order: %v", sectors)
		}
	}

	got, err := repo.GetSectorBySlug(ctx, sectors[0].Slug)
	if err != nil {
		t.Fatalf("GetSectorBySlug error: %v", err)
	}
	if got == nil || got.ID != sectors[0].ID {
		t.Fatalf("GetSectorBySlug wrong result: %#v", got)
	}
	if got.Name.AR == "" {
		t.Fatalf("seeded sector missing arabic name: %#v", got)
	}

	missing, err := repo.GetSectorBySlug(ctx, "no-such-sector")
	if err != nil {
		t.Fatalf("expected no error for unknown slug, got %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown slug, got %#v", missing)
	}
}

func TestSectorCRUDAndVisibility(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	before, err := repo.ListSectors(ctx)
	if err != nil {
		t.Fatalf("ListSectors error: %v", err)
	}

	created, err := repo.CreateSector(ctx, &models.Sector{
		Name:      models.Text{EN: "Aviation", AR: "الطيران"},
		SortOrder: 99,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("CreateSector error: %v", err)
	}
	if created.Slug == "" {
		t.Fatalf("expected generated slug")
	}

	after, err := repo.ListSectors(ctx)
	if err != nil {
		t.Fatalf("ListSectors error: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d sectors, got %d", len(before)+1, len(after))
	}

	inactive := false
	updated, err := repo.UpdateSector(ctx, created.ID, models.SectorUpdate{IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdateSector error: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("update not applied: %#v", updated)
	}

	hidden, err := repo.GetSectorBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("GetSectorBySlug after deactivate error: %v", err)
	}
	if hidden != nil {
		t.Fatalf("inactive sector still visible: %#v", hidden)
	}

	if err := repo.DeleteSector(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSector error: %v", err)
	}
}

func TestSectorsWithProjectCount(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	annotated, err := repo.SectorsWithProjectCount(ctx)
	if err != nil {
		t.Fatalf("SectorsWithProjectCount error: %v", err)
	}
	if len(annotated) == 0 {
		t.Fatalf("expected seeded sectors")
	}
	for _, s := range annotated {
		if s.ProjectCount != 0 {
			t.Fatalf("expected zero project counts on empty join table: %#v", s)
		}
	}
}

func TestServiceCRUD(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	services, err := repo.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices error: %v", err)
	}
	if len(services) == 0 {
		t.Fatalf("expected seeded services")
	}

	got, err := repo.GetServiceBySlug(ctx, services[0].Slug)
	if err != nil {
		t.Fatalf("GetServiceBySlug error: %v", err)
	}
	if got == nil || got.ID != services[0].ID {
		t.Fatalf("GetServiceBySlug wrong result: %#v", got)
	}

	created, err := repo.CreateService(ctx, &models.Service{
		Name:     models.Text{EN: "Drone Surveying", AR: "المسح بالطائرات المسيرة"},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateService error: %v", err)
	}

	icon := "drone"
	updated, err := repo.UpdateService(ctx, created.ID, models.ServiceUpdate{Icon: &icon})
	if err != nil {
		t.Fatalf("UpdateService error: %v", err)
	}
	if updated.Icon != "drone" {
		t.Fatalf("update not applied: %#v", updated)
	}
	if updated.Name.EN != created.Name.EN {
		t.Fatalf("untouched field changed: %#v", updated)
	}

	if err := repo.DeleteService(ctx, created.ID); err != nil {
		t.Fatalf("DeleteService error: %v", err)
	}
	gone, err := repo.GetServiceBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("GetServiceBySlug after delete error: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected nil after delete, got %#v", gone)
	}

	annotated, err := repo.ServicesWithProjectCount(ctx)
	if err != nil {
		t.Fatalf("ServicesWithProjectCount error: %v", err)
	}
	if len(annotated) != len(services) {
		t.Fatalf("expected %d services, got %d", len(services), len(annotated))
	}
}
