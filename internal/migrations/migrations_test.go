package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/termfolio/termfolio/internal/database"
	"github.com/termfolio/termfolio/internal/migrations"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrations(t *testing.T) {
	db := openDB(t)

	applied, err := migrations.Run(context.Background(), db)
	if err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	if len(applied) == 0 || applied[0] != 1 {
		t.Errorf("applied = %v, want to start at version 1", applied)
	}

	// Verify all tables exist by querying sqlite_master.
	want := []string{"settings", "contact_messages"}

	for _, table := range want {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found: %v", table, err)
		}
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db := openDB(t)

	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	applied, err := migrations.Run(context.Background(), db)
	if err != nil {
		t.Fatalf("second run (should be no-op): %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("second run applied %v, want nothing", applied)
	}
}
