package db

import (
	"embed"
	"log/slog"

	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies every pending up migration.
func Migrate(cfg config.DBConfig) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errs.Wrap(err, "failed to open migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.BuildMigrateURL())
	if err != nil {
		return errs.Wrap(err, "failed to init migrations")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errs.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errs.Is(err, migrate.ErrNilVersion) {
		return errs.Wrap(err, "failed to read migration version")
	}
	slog.Info("database migrated", "version", version, "dirty", dirty)

	return nil
}
