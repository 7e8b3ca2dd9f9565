package service

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jengzang/trip-planner-go/internal/database"
	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/repository"
)

func newTestLocationService(t *testing.T) *LocationService {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	return NewLocationService(
		repository.NewLocationRepository(db),
		repository.NewUserLocationRepository(db),
	)
}

func TestAddUserLocationRejectsUnknownCategory(t *testing.T) {
	s := newTestLocationService(t)

	err := s.AddUserLocation("alice", models.Location{
		Name:     "Somewhere",
		Category: "volcano",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown category")
	}

	locs, err := s.Catalog("alice")
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	for _, l := range locs {
		if l.Name == "Somewhere" {
			t.Error("rejected location was stored")
		}
	}
}

func TestCatalogMergesUserLocations(t *testing.T) {
	s := newTestLocationService(t)

	loc := models.Location{
		Name:     "Secret Beach",
		Lat:      -20.5,
		Lng:      57.35,
		Category: models.CategoryBeach,
	}
	if err := s.AddUserLocation("alice", loc); err != nil {
		t.Fatalf("AddUserLocation returned error: %v", err)
	}

	locs, err := s.Catalog("alice")
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	found := false
	for _, l := range locs {
		if l.Name == "Secret Beach" {
			found = true
		}
	}
	if !found {
		t.Error("added location missing from the merged catalog")
	}

	// Anonymous callers only see the curated catalog.
	anon, err := s.Catalog("")
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	for _, l := range anon {
		if l.Name == "Secret Beach" {
			t.Error("user location leaked into the anonymous catalog")
		}
	}
}

func TestCatalogCuratedWinsOnNameClash(t *testing.T) {
	s := newTestLocationService(t)

	clash := models.Location{
		Name:     "Grand Baie",
		Lat:      0,
		Lng:      0,
		Category: models.CategoryFood,
	}
	if err := s.AddUserLocation("alice", clash); err != nil {
		t.Fatalf("AddUserLocation returned error: %v", err)
	}

	locs, err := s.Catalog("alice")
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	count := 0
	for _, l := range locs {
		if l.Name == "Grand Baie" {
			count++
			if l.Category != models.CategoryAdventure || l.IsUserAdded {
				t.Errorf("clash resolved to %+v, want the curated entry", l)
			}
		}
	}
	if count != 1 {
		t.Errorf("Grand Baie appears %d times, want 1", count)
	}
}
