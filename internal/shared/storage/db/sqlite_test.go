package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteMigrationsApply(t *testing.T) {
	ctx := context.Background()
	database, err := ConnectSQLite(ctx, filepath.Join(t.TempDir(), "diag.db"))
	if err != nil {
		t.Fatalf("ConnectSQLite: %v", err)
	}
	defer database.Close()

	if err := RunMigrations(ctx, database, DialectSQLite); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	var mode string
	if err := database.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("expected wal, got %q", mode)
	}
	var n int
	if err := database.QueryRowContext(ctx, "SELECT COUNT(*) FROM diagnostics").Scan(&n); err != nil {
		t.Fatalf("diagnostics table missing: %v", err)
	}
}
