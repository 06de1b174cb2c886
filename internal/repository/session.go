package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/healthtrack/healthtrack-go/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository handles bearer-token session persistence.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session token for the given user. A user may hold
// any number of concurrent sessions.
func (r *SessionRepository) Create(ctx context.Context, userID int64, token string) error {
	query := `INSERT INTO sessions (user_id, token, created_at) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, userID, token, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Resolve looks up a session by exact token match and returns the owning
// user. An unknown token returns ErrSessionNotFound; callers treat that
// the same as absent credentials.
func (r *SessionRepository) Resolve(ctx context.Context, token string) (*model.User, error) {
	query := `SELECT users.id, users.name, users.email
		FROM sessions JOIN users ON sessions.user_id = users.id
		WHERE sessions.token = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return user, nil
}

// Delete revokes a session token. Tokens have no expiry, so revocation is
// the only way a session ends.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
