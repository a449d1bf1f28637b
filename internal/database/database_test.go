package database_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge-be/internal/database"
)

func newMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := newMigratedDB(t)

	for _, table := range []string{"users", "projects"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := newMigratedDB(t)
	require.NoError(t, database.Migrate(context.Background(), db))
}

func TestUserEmailIsUnique(t *testing.T) {
	db := newMigratedDB(t)

	const insert = "INSERT INTO users(email, full_name, password_hash, role, is_active) VALUES(?, ?, ?, ?, TRUE)"
	_, err := db.Exec(insert, "dup@example.com", "First", "h1", "viewer")
	require.NoError(t, err)

	_, err = db.Exec(insert, "dup@example.com", "Second", "h2", "viewer")
	assert.Error(t, err, "duplicate email must be rejected")
}

func TestProjectOwnerForeignKeyEnforced(t *testing.T) {
	db := newMigratedDB(t)

	_, err := db.Exec(
		"INSERT INTO projects(name, description, status, priority, budget_cents, owner_id) VALUES(?, ?, ?, ?, ?, ?)",
		"Orphan", "no such owner", "draft", "low", 100, 9999)
	assert.Error(t, err, "owner_id must reference an existing user")
}

func TestProjectBudgetMustBeNonNegative(t *testing.T) {
	db := newMigratedDB(t)

	_, err := db.Exec(
		"INSERT INTO users(email, full_name, password_hash, role, is_active) VALUES(?, ?, ?, ?, TRUE)",
		"owner@example.com", "Owner", "h", "manager")
	require.NoError(t, err)

	_, err = db.Exec(
		"INSERT INTO projects(name, description, status, priority, budget_cents, owner_id) VALUES(?, ?, ?, ?, ?, 1)",
		"Negative", "bad budget", "draft", "low", -1)
	assert.Error(t, err)
}
