package database

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"academia-backend/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionRepo persists login sessions. Tokens are never stored directly:
// the table keeps an HMAC keyed with the session secret, so database access
// alone is not enough to mint a valid cookie.
type SessionRepo struct {
	db     *DB
	secret string
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *DB, secret string) *SessionRepo {
	return &SessionRepo{db: db, secret: secret}
}

// Create mints a session for usuario and returns the plain token
func (r *SessionRepo) Create(ctx context.Context, usuario string, ttl time.Duration) (string, *models.Session, error) {
	// Generate random token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, err
	}
	token := hex.EncodeToString(tokenBytes)

	session := &models.Session{
		Usuario:   usuario,
		TokenHash: r.hashToken(token),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	result, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO sessions (usuario, token_hash, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.Usuario, session.TokenHash, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return "", nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return "", nil, err
	}
	session.ID = id

	return token, session, nil
}

// GetByToken retrieves a session by its plain token. Expired sessions are
// removed on read.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	session := &models.Session{}

	err := r.db.conn.QueryRowContext(ctx, `
		SELECT id, usuario, token_hash, created_at, expires_at
		FROM sessions WHERE token_hash = ?
	`, r.hashToken(token)).Scan(
		&session.ID, &session.Usuario, &session.TokenHash,
		&session.CreatedAt, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		r.deleteByID(ctx, session.ID)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// DeleteByToken deletes a session by its plain token
func (r *SessionRepo) DeleteByToken(ctx context.Context, token string) error {
	result, err := r.db.conn.ExecContext(ctx,
		"DELETE FROM sessions WHERE token_hash = ?", r.hashToken(token))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes all expired sessions
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.conn.ExecContext(ctx,
		"DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *SessionRepo) deleteByID(ctx context.Context, id int64) {
	r.db.conn.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
}

// hashToken computes the keyed hash stored in place of the token
func (r *SessionRepo) hashToken(token string) string {
	mac := hmac.New(sha256.New, []byte(r.secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
