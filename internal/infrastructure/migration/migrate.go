package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Runner applies the SQL migrations under migrations/ to a postgres database
type Runner struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// NewRunner wires golang-migrate to an open database handle and a directory
// of numbered up/down SQL files
func NewRunner(db *sql.DB, dir string, logger *zap.Logger) (*Runner, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migration source %q: %w", dir, err)
	}

	return &Runner{m: m, logger: logger}, nil
}

// Apply runs all pending migrations
func (r *Runner) Apply() error {
	if err := r.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Schema already up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	return r.logVersion("Migrations applied")
}

// Rollback reverts every applied migration
func (r *Runner) Rollback() error {
	if err := r.m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("No migrations to roll back")
			return nil
		}
		return fmt.Errorf("roll back migrations: %w", err)
	}
	r.logger.Info("All migrations rolled back")
	return nil
}

// Steps moves the schema n migrations forward (n > 0) or backward (n < 0)
func (r *Runner) Steps(n int) error {
	if err := r.m.Steps(n); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Schema already up to date")
			return nil
		}
		return fmt.Errorf("step migrations by %d: %w", n, err)
	}
	return r.logVersion("Migration steps applied")
}

// Version reports the current schema version. A zero version with no error
// means no migration has been applied yet.
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force overwrites the recorded schema version without running any SQL.
// Only for recovering a dirty state after a failed migration.
func (r *Runner) Force(version int) error {
	r.logger.Warn("Forcing schema version", zap.Int("version", version))
	if err := r.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

// Close releases the source and database handles held by golang-migrate
func (r *Runner) Close() error {
	sourceErr, dbErr := r.m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}

func (r *Runner) logVersion(msg string) error {
	version, dirty, err := r.Version()
	if err != nil {
		return err
	}
	r.logger.Info(msg, zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
