package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/seed"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "seed.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty database loads an empty seed", func(t *testing.T) {
		store := newTestStore(t)

		loaded, err := store.LoadSeed(ctx)
		if err != nil {
			t.Fatalf("LoadSeed failed: %v", err)
		}
		if loaded.CurrentUserID != "" {
			t.Errorf("Expected no current user, got %q", loaded.CurrentUserID)
		}
		if loaded.Group != nil || loaded.CleaningDuty != nil {
			t.Error("Expected no group and no cleaning duty")
		}
		if len(loaded.Users) != 0 || len(loaded.Todos) != 0 {
			t.Error("Expected empty collections")
		}
	})

	t.Run("SaveSeed then LoadSeed returns the same seed", func(t *testing.T) {
		store := newTestStore(t)
		original := seed.Demo()

		if err := store.SaveSeed(ctx, original); err != nil {
			t.Fatalf("SaveSeed failed: %v", err)
		}

		loaded, err := store.LoadSeed(ctx)
		if err != nil {
			t.Fatalf("LoadSeed failed: %v", err)
		}

		if !reflect.DeepEqual(original, loaded) {
			t.Errorf("Loaded seed differs from saved seed\nsaved:  %+v\nloaded: %+v", original, loaded)
		}
		if err := seed.Validate(loaded); err != nil {
			t.Errorf("Loaded seed is invalid: %v", err)
		}
	})

	t.Run("SaveSeed replaces the previous seed", func(t *testing.T) {
		store := newTestStore(t)

		if err := store.SaveSeed(ctx, seed.Demo()); err != nil {
			t.Fatalf("SaveSeed failed: %v", err)
		}

		smaller := &models.Seed{
			CurrentUserID: "u1",
			Users: []models.User{
				{ID: "u1", Name: "Solo", Email: "solo@example.com", PresenceStatus: models.PresencePresent},
			},
		}
		if err := store.SaveSeed(ctx, smaller); err != nil {
			t.Fatalf("SaveSeed failed: %v", err)
		}

		loaded, err := store.LoadSeed(ctx)
		if err != nil {
			t.Fatalf("LoadSeed failed: %v", err)
		}
		if len(loaded.Users) != 1 || loaded.Users[0].Name != "Solo" {
			t.Errorf("Expected only the new user, got %+v", loaded.Users)
		}
		if len(loaded.Expenses) != 0 {
			t.Errorf("Expected old expenses to be gone, got %d", len(loaded.Expenses))
		}
		if loaded.Group != nil {
			t.Error("Expected old group to be gone")
		}
	})

	t.Run("preserves order and optional fields", func(t *testing.T) {
		store := newTestStore(t)
		due := time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC)
		remind := due.Add(-time.Hour)

		original := &models.Seed{
			Todos: []models.Todo{
				{ID: "todo-b", Title: "Second added, shown first", Priority: models.PriorityLow, CreatedBy: "u1"},
				{
					ID:         "todo-a",
					Title:      "With everything",
					DueDate:    &due,
					Priority:   models.PriorityHigh,
					AssignedTo: []string{"u2", "u1"},
					GroupID:    "g1",
					CreatedBy:  "u1",
					Reminders:  []time.Time{remind},
				},
			},
		}
		if err := store.SaveSeed(ctx, original); err != nil {
			t.Fatalf("SaveSeed failed: %v", err)
		}

		loaded, err := store.LoadSeed(ctx)
		if err != nil {
			t.Fatalf("LoadSeed failed: %v", err)
		}
		if !reflect.DeepEqual(original.Todos, loaded.Todos) {
			t.Errorf("Todos differ\nsaved:  %+v\nloaded: %+v", original.Todos, loaded.Todos)
		}
	})

	t.Run("data survives reopening the database", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "seed.db")
		store, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}
		if err := store.SaveSeed(ctx, seed.Demo()); err != nil {
			t.Fatalf("SaveSeed failed: %v", err)
		}
		store.Close()

		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to reopen store: %v", err)
		}
		defer reopened.Close()

		loaded, err := reopened.LoadSeed(ctx)
		if err != nil {
			t.Fatalf("LoadSeed failed: %v", err)
		}
		if loaded.CurrentUserID != seed.DemoCurrentUserID {
			t.Errorf("Expected current user %q, got %q", seed.DemoCurrentUserID, loaded.CurrentUserID)
		}
	})
}
