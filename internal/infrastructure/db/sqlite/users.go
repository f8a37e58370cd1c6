package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/freelancedesk/billable/internal/core/domain"
)

// CreateUser inserts user and sets its ID.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	var clientID sql.NullInt64
	if user.ClientID != nil {
		clientID = sql.NullInt64{Int64: *user.ClientID, Valid: true}
	}

	res, err := s.q.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role, client_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, string(user.Role), clientID, user.CreatedAt.Format(time.RFC3339),
	)
	if isUniqueViolation(err) {
		return domain.ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	user.ID = id
	return nil
}

// FindUserByUsername returns domain.ErrUserNotFound when no row matches.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var (
		u         domain.User
		role      string
		clientID  sql.NullInt64
		createdAt string
	)
	err := s.q.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role, client_id, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &clientID, &createdAt)
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}

	if u.Role, err = domain.ParseRole(role); err != nil {
		return nil, fmt.Errorf("user %d: %w", u.ID, err)
	}
	if clientID.Valid {
		id := clientID.Int64
		u.ClientID = &id
	}
	if u.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("user %d created_at: %w", u.ID, err)
	}
	return &u, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
