package migrations_test

import (
	"context"
	"testing"

	"github.com/livinggrainco/site/internal/database"
	"github.com/livinggrainco/site/internal/migrations"
)

func TestMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	n, err := migrations.Run(ctx, db)
	if err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	if n != 1 {
		t.Errorf("applied = %d, want 1", n)
	}

	for _, object := range []struct{ kind, name string }{
		{"table", "wizard_sessions"},
		{"index", "wizard_sessions_expires_at"},
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type=? AND name=?", object.kind, object.name,
		).Scan(&name)
		if err != nil {
			t.Errorf("%s %q not found: %v", object.kind, object.name, err)
		}
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	n, err := migrations.Run(ctx, db)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if n != 0 {
		t.Errorf("second run applied %d migrations, want 0", n)
	}
}
