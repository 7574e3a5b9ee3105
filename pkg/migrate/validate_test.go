package migrate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/salespulse/insights-backend/pkg/migrate"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("expected shipped migrations to validate, got %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFile(t, dir, "create_tables.sql", "-- +goose Up\n-- +goose Down\n")

	if err := migrate.ValidateDir(dir); err == nil {
		t.Fatal("expected error for filename without version prefix")
	}
}

func TestValidateDirRejectsDuplicateVersions(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFile(t, dir, "20250412093000_first.sql", "-- +goose Up\n-- +goose Down\n")
	writeMigrationFile(t, dir, "20250412093000_second.sql", "-- +goose Up\n-- +goose Down\n")

	if err := migrate.ValidateDir(dir); err == nil {
		t.Fatal("expected error for duplicate migration version")
	}
}

func TestValidateDirRejectsMissingDownSection(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFile(t, dir, "20250412093000_first.sql", "-- +goose Up\nCREATE TABLE t (id INT);\n")

	if err := migrate.ValidateDir(dir); err == nil {
		t.Fatal("expected error for migration without a down section")
	}
}

func writeMigrationFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write migration file: %v", err)
	}
}
