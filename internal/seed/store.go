package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/planforge/planforge-be/internal/models"
)

// Store is the narrow slice of the storage engine the seeding flow
// consumes. Batch creates run in a single transaction that is committed
// before they return; generated identifiers are only observable
// afterwards, via UserIDByEmail.
type Store interface {
	CountUsers(ctx context.Context) (int, error)
	CreateUsers(ctx context.Context, users []models.User) error
	UserIDByEmail(ctx context.Context, email string) (int64, error)
	CreateProjects(ctx context.Context, projects []models.Project) error
}

// SQLStore implements Store on top of a database/sql handle.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a Store backed by db.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// CountUsers returns the current number of user accounts.
func (s *SQLStore) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CreateUsers inserts the batch in one transaction.
func (s *SQLStore) CreateUsers(ctx context.Context, users []models.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO users(email, full_name, password_hash, role, is_active) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, u := range users {
		if _, err := stmt.ExecContext(ctx, u.Email, u.FullName, u.PasswordHash, string(u.Role), u.IsActive); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert user %s: %w", u.Email, err)
		}
	}
	return tx.Commit()
}

// UserIDByEmail returns the generated identifier of the user with the
// given email.
func (s *SQLStore) UserIDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE email = ?", email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("user with email %s not found", email)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateProjects inserts the batch in one transaction.
func (s *SQLStore) CreateProjects(ctx context.Context, projects []models.Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO projects(name, description, status, priority, budget_cents, owner_id) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, pr := range projects {
		if _, err := stmt.ExecContext(ctx, pr.Name, pr.Description, string(pr.Status), string(pr.Priority), pr.BudgetCents, pr.OwnerID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert project %s: %w", pr.Name, err)
		}
	}
	return tx.Commit()
}
