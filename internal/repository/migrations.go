package repository

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

//go:embed migration/*
var migrationsFS embed.FS

// MigrationsTempDir creates a temporary directory, populates it with the
// embedded migration files, and returns the path to that directory. This lets
// the srv binary run migrations without shipping the files separately.
//
// It is the caller's responsibility to remove the directory when it is no
// longer needed.
func MigrationsTempDir() (string, error) {
	tmpDir, err := os.MkdirTemp("", "migrations-*")
	if err != nil {
		return "", err
	}

	mFS, err := fs.Sub(migrationsFS, "migration")
	if err != nil {
		return "", err
	}

	if err := fs.WalkDir(mFS, ".", func(path string, d fs.DirEntry, _ error) error {
		dst := filepath.Join(tmpDir, path)
		if dst == tmpDir {
			return nil
		}

		if d.IsDir() {
			if err := os.Mkdir(dst, 0700); err != nil {
				return fmt.Errorf("failed to mkdir %q: %w", dst, err)
			}
			return nil
		}

		b, err := fs.ReadFile(mFS, path)
		if err != nil {
			return fmt.Errorf("failed to read file %q: %w", path, err)
		}

		if err := os.WriteFile(dst, b, 0600); err != nil {
			return fmt.Errorf("failed to write file %q: %w", dst, err)
		}

		return nil
	}); err != nil {
		return "", err
	}

	return tmpDir, nil
}

// Migrate applies all pending migrations against the given mysql database.
func Migrate(db *sql.DB, databaseName string) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return err
	}

	dir, err := MigrationsTempDir()
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", dir), databaseName, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}
