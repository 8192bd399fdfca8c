package database

import (
	"context"
	"database/sql"
	"errors"

	"academia-backend/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepo handles administrator rows.
type AdminRepo struct {
	db *DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// Create inserts an admin with an already-hashed password. Usernames are
// unique at the store level.
func (r *AdminRepo) Create(ctx context.Context, usuario, senhaHash string) error {
	_, err := r.db.conn.ExecContext(ctx,
		"INSERT INTO admins (usuario, senha) VALUES (?, ?)", usuario, senhaHash)
	return err
}

// GetByUsername retrieves an admin by exact username match
func (r *AdminRepo) GetByUsername(ctx context.Context, usuario string) (*models.Admin, error) {
	admin := &models.Admin{}

	err := r.db.conn.QueryRowContext(ctx,
		"SELECT id, usuario, senha FROM admins WHERE usuario = ?", usuario).
		Scan(&admin.ID, &admin.Usuario, &admin.Senha)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	return admin, nil
}

// Count returns the total number of admins
func (r *AdminRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&count)
	return count, err
}
