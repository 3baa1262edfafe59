// Package testutil holds helpers shared by package tests that need a real,
// migrated database.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophtasks/internal/dbx"
	"github.com/dmitrijs2005/gophtasks/internal/server/migrations"
)

// SetupTestDB opens a fresh SQLite database file in a temporary directory and
// applies all migrations. The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, dialect, err := dbx.Open("sqlite://" + filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(context.Background(), db, dialect); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestUser inserts a user row directly and returns its id.
func CreateTestUser(t *testing.T, db *sql.DB, id, username string) string {
	t.Helper()

	_, err := db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?1, ?2, ?3, CURRENT_TIMESTAMP)`,
		id, username, "not-a-real-hash")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}
