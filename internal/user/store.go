// Package user implements account storage for the aggregator's API, so that
// feed preferences and saved articles are held per authenticated user.
package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aliraza019-js/news-aggregator-by-ali/pkg/storage"
)

// Schema is the SQLite schema for user accounts.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// User is one registered account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}

// Store provides user persistence.
type Store struct {
	db *storage.DB
}

// NewStore creates a new user store.
func NewStore(db *storage.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new user and returns its ID.
func (s *Store) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		email, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// ByEmail finds a user by email address. A missing user returns (nil, nil).
func (s *Store) ByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash FROM users WHERE email = ?`, email)
	u := &User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
