package main

// Run database migrations:
//   go run ./cmd/migrate
// DATABASE_URL selects the dialect; "sqlite:<path>" targets a local file.

import (
	"context"
	"os"

	"diagnostic-backend/internal/shared/config"
	"diagnostic-backend/internal/shared/storage/db"
	"diagnostic-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, dialect, err := db.Open(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"err": err})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB, dialect); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"dialect": string(dialect), "err": err})
		os.Exit(1)
	}
	names, _ := db.MigrationNames(dialect)
	telemetry.Info("migrate.done", map[string]any{"dialect": string(dialect), "migrations": names})
}
