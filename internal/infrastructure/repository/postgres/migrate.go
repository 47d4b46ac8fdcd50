package postgres

import (
	"context"
	"errors"
	"io/fs"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

// NewMigrator builds a migrator reading migrations from dir inside fsys.
// Closing the migrator closes db.
func NewMigrator(db *sqlx.DB, fsys fs.FS, dir string) (*migrate.Migrate, error) {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return nil, crerr.Wrap(err, "create migration driver")
	}

	return newMigrator(driver, fsys, dir)
}

// ApplyMigrations runs every pending up migration on a single connection
// borrowed from db, leaving the pool open. No pending change is not an error.
func ApplyMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS, dir string) (err error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return crerr.Wrap(err, "acquire migration connection")
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()
		return crerr.Wrap(err, "create migration driver")
	}

	m, err := newMigrator(driver, fsys, dir)
	if err != nil {
		_ = driver.Close()
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return crerr.Wrap(err, "apply migrations")
	}

	return nil
}

func newMigrator(driver database.Driver, fsys fs.FS, dir string) (*migrate.Migrate, error) {
	source, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, crerr.Wrap(err, "open migration source")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, crerr.Wrap(err, "create migrator")
	}

	return m, nil
}
